package task

import "github.com/ayush/task-manager-api/internal/models"

// permits reports whether the authenticated user owns the task. A nil
// task is never permitted, so a missing record and a foreign-owned one
// take the same denial path.
func permits(t *models.Task, userID string) bool {
	return t != nil && t.UserID == userID
}
