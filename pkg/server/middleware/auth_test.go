package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T, wantSubject string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ := r.Context().Value(SubjectKey).(string)
		assert.Equal(t, wantSubject, subject)
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware(t *testing.T) {
	auth := NewBearerAuthenticator("test-secret")

	t.Run("accepts a valid token", func(t *testing.T) {
		token, err := auth.IssueToken("alice", time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/people/alice", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		auth.Middleware(protectedHandler(t, "alice")).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/people/alice", nil)
		w := httptest.NewRecorder()

		auth.Middleware(protectedHandler(t, "")).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization missing")
	})

	t.Run("rejects a non-bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/people/alice", nil)
		req.Header.Set("Authorization", `Token token="abc"`)
		w := httptest.NewRecorder()

		auth.Middleware(protectedHandler(t, "")).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := auth.IssueToken("alice", -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/people/alice", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		auth.Middleware(protectedHandler(t, "")).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		other := NewBearerAuthenticator("other-secret")
		token, err := other.IssueToken("alice", time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/people/alice", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		auth.Middleware(protectedHandler(t, "")).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
