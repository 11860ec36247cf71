package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thequickanswers/subsite-backend/internal/auth"
)

type fakeVerifier struct {
	roles map[uuid.UUID]string
}

func (f *fakeVerifier) ExistsWithRole(_ context.Context, id uuid.UUID, role string) (bool, error) {
	return f.roles[id] == role, nil
}

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret-at-least-32-characters!!", "subsite-backend", time.Hour)
}

func doRequest(handler gin.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", handler, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireUser(t *testing.T) {
	tm := newTokenManager()

	t.Run("missing token", func(t *testing.T) {
		w := doRequest(RequireUser(tm), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doRequest(RequireUser(tm), "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		token, err := tm.Generate(uuid.New(), "u@b.c", "user")
		require.NoError(t, err)

		w := doRequest(RequireUser(tm), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireSuperAdmin(t *testing.T) {
	tm := newTokenManager()
	superID := uuid.New()
	adminID := uuid.New()
	verifier := &fakeVerifier{roles: map[uuid.UUID]string{
		superID: "super_admin",
		adminID: "admin",
	}}

	t.Run("super admin passes", func(t *testing.T) {
		token, err := tm.Generate(superID, "root@b.c", "super_admin")
		require.NoError(t, err)

		w := doRequest(RequireSuperAdmin(tm, verifier), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("regular admin is forbidden", func(t *testing.T) {
		token, err := tm.Generate(adminID, "a@b.c", "admin")
		require.NoError(t, err)

		w := doRequest(RequireSuperAdmin(tm, verifier), "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("deleted account is forbidden despite valid token", func(t *testing.T) {
		token, err := tm.Generate(uuid.New(), "ghost@b.c", "super_admin")
		require.NoError(t, err)

		w := doRequest(RequireSuperAdmin(tm, verifier), "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	tm := newTokenManager()
	adminID := uuid.New()
	verifier := &fakeVerifier{roles: map[uuid.UUID]string{adminID: "admin"}}

	t.Run("admin passes with claimed role intact", func(t *testing.T) {
		token, err := tm.Generate(adminID, "a@b.c", "admin")
		require.NoError(t, err)

		w := doRequest(RequireAdmin(tm, verifier), "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("role claim mismatch is forbidden", func(t *testing.T) {
		// Token claims super_admin but the account only holds admin.
		token, err := tm.Generate(adminID, "a@b.c", "super_admin")
		require.NoError(t, err)

		w := doRequest(RequireAdmin(tm, verifier), "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
