package task

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ayush/task-manager-api/internal/middleware"
	"github.com/ayush/task-manager-api/internal/models"
	"github.com/ayush/task-manager-api/internal/store"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// forbidden is the single response for both a missing task and one
// owned by someone else.
func forbidden(w http.ResponseWriter) {
	http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
}

// Store defines the interface for task persistence.
type Store interface {
	CreateTask(ctx context.Context, t *models.Task) error
	ListTasksByUser(ctx context.Context, userID string) ([]models.Task, error)
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, t *models.Task) error
	DeleteTask(ctx context.Context, id string) error
}

// Handler holds task HTTP handlers.
type Handler struct {
	tasks Store
}

func NewHandler(tasks Store) *Handler {
	return &Handler{tasks: tasks}
}

// Create stores a new task owned by the caller.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}

	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	t := &models.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		UserID:      userID,
	}
	if err := h.tasks.CreateTask(r.Context(), t); err != nil {
		log.Error().Err(err).Msg("create task")
		http.Error(w, `{"error":"failed to create task"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

// List returns all tasks owned by the caller.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}

	tasks, err := h.tasks.ListTasksByUser(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("list tasks")
		http.Error(w, `{"error":"failed to list tasks"}`, http.StatusInternalServerError)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// fetchOwned loads the task at {id} and applies the ownership guard.
// A nil task with no error written means the caller may not proceed.
func (h *Handler) fetchOwned(w http.ResponseWriter, r *http.Request) *models.Task {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return nil
	}

	id := chi.URLParam(r, "id")
	t, err := h.tasks.GetTaskByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		forbidden(w)
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("get task")
		http.Error(w, `{"error":"failed to load task"}`, http.StatusInternalServerError)
		return nil
	}
	if !permits(t, userID) {
		forbidden(w)
		return nil
	}
	return t
}

// Get returns a single task owned by the caller.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t := h.fetchOwned(w, r)
	if t == nil {
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Update replaces title, description, and status.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	t := h.fetchOwned(w, r)
	if t == nil {
		return
	}

	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	t.Title = req.Title
	t.Description = req.Description
	t.Status = req.Status
	if err := h.tasks.UpdateTask(r.Context(), t); err != nil {
		log.Error().Err(err).Msg("update task")
		http.Error(w, `{"error":"failed to update task"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Patch applies only the fields present in the request body.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	t := h.fetchOwned(w, r)
	if t == nil {
		return
	}

	var req models.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if err := h.tasks.UpdateTask(r.Context(), t); err != nil {
		log.Error().Err(err).Msg("patch task")
		http.Error(w, `{"error":"failed to update task"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Delete removes a task owned by the caller.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	t := h.fetchOwned(w, r)
	if t == nil {
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), t.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error().Err(err).Msg("delete task")
		http.Error(w, `{"error":"failed to delete task"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}
