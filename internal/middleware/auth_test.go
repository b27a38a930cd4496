package middleware

import (
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/require"

	"github.com/ayush/task-manager-api/internal/auth"
)

func protectedEcho(t *testing.T) (http.Handler, *auth.TokenIssuer) {
	t.Helper()
	tokens, err := auth.NewTokenIssuer([]byte("middleware-test-secret"))
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r.Context())
		require.True(t, ok)
		w.Write([]byte(id))
	})
	return RequireAuth(tokens)(next), tokens
}

func TestRequireAuthValidToken(t *testing.T) {
	handler, tokens := protectedEcho(t)

	token, err := tokens.Issue("user-42")
	require.NoError(t, err)

	apitest.Handler(handler).
		Get("/").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Body("user-42").
		End()
}

func TestRequireAuthRejects(t *testing.T) {
	handler, tokens := protectedEcho(t)

	token, err := tokens.Issue("user-42")
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"no scheme":      token,
		"wrong scheme":   "Basic " + token,
		"garbage token":  "Bearer garbage",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := apitest.Handler(handler).Get("/")
			if header != "" {
				req.Header("Authorization", header)
			}
			req.Expect(t).
				Status(http.StatusUnauthorized).
				End()
		})
	}
}

func TestUserIDAbsent(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	_, ok := UserID(req.Context())
	require.False(t, ok)
}
