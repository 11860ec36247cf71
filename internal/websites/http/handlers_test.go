package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thequickanswers/subsite-backend/internal/auth"
	"github.com/thequickanswers/subsite-backend/internal/auth/middleware"
	"github.com/thequickanswers/subsite-backend/internal/websites/domain"
	"github.com/thequickanswers/subsite-backend/internal/websites/service"
)

type fakeProvisioner struct {
	result *service.ProvisionResult
	err    error
	got    service.ProvisionRequest
}

func (f *fakeProvisioner) Provision(_ context.Context, req service.ProvisionRequest) (*service.ProvisionResult, error) {
	f.got = req
	return f.result, f.err
}

type fakeReader struct {
	websites map[string]*domain.Website
}

func (f *fakeReader) GetBySubdomain(_ context.Context, subdomain string) (*domain.Website, error) {
	w, ok := f.websites[subdomain]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return w, nil
}

func setupRouter(p Provisioner, r WebsiteReader, tm *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/api/website")
	group.Use(middleware.RequireUser(tm))
	NewHandler(p, r).Register(group)
	return engine
}

func authedRequest(t *testing.T, tm *auth.TokenManager, userID uuid.UUID, method, path string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)

	token, err := tm.Generate(userID, "u@b.c", "user")
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestCreateWebsite(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-at-least-32-characters!!", "subsite-backend", time.Hour)
	userID := uuid.New()

	t.Run("success envelope", func(t *testing.T) {
		website := &domain.Website{ID: uuid.New(), Name: "My Cafe", UserID: userID, Subdomain: "my-cafe"}
		p := &fakeProvisioner{result: &service.ProvisionResult{
			Domain:  "my-cafe.example.com",
			Target:  "d123.amplifyapp.com",
			Website: website,
		}}
		router := setupRouter(p, &fakeReader{}, tm)

		req := authedRequest(t, tm, userID, http.MethodPost, "/api/website/create", gin.H{
			"amplifyApp": "app123",
			"name":       "My Cafe",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Domain string `json:"domain"`
			Data   struct {
				WebsiteContent      domain.Website `json:"websiteContent"`
				AmplifyDomainTarget string         `json:"amplifyDomainTarget"`
			} `json:"data"`
			Error bool `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "my-cafe.example.com", resp.Domain)
		assert.Equal(t, "d123.amplifyapp.com", resp.Data.AmplifyDomainTarget)
		assert.Equal(t, "my-cafe", resp.Data.WebsiteContent.Subdomain)
		assert.False(t, resp.Error)

		// The authenticated user, not the body, owns the website.
		assert.Equal(t, userID, p.got.UserID)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router := setupRouter(&fakeProvisioner{}, &fakeReader{}, tm)

		req := httptest.NewRequest(http.MethodPost, "/api/website/create", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		p := &fakeProvisioner{err: domain.ErrSubdomainTaken}
		router := setupRouter(p, &fakeReader{}, tm)

		req := authedRequest(t, tm, userID, http.MethodPost, "/api/website/create", gin.H{
			"amplifyApp": "app123",
			"name":       "My Cafe",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Subdomain already exists")
	})

	t.Run("invalid app", func(t *testing.T) {
		p := &fakeProvisioner{err: domain.ErrInvalidApp}
		router := setupRouter(p, &fakeReader{}, tm)

		req := authedRequest(t, tm, userID, http.MethodPost, "/api/website/create", gin.H{
			"amplifyApp": "nope",
			"name":       "My Cafe",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid Amplify app")
	})

	t.Run("classified external failure", func(t *testing.T) {
		p := &fakeProvisioner{err: &service.ProvisionError{
			Step:       "map_subdomain",
			BadRequest: true,
			Err:        assertErr("InvalidChangeBatch: bad record"),
		}}
		router := setupRouter(p, &fakeReader{}, tm)

		req := authedRequest(t, tm, userID, http.MethodPost, "/api/website/create", gin.H{
			"amplifyApp": "app123",
			"name":       "My Cafe",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid subdomain configuration")
		assert.Contains(t, w.Body.String(), "InvalidChangeBatch")
	})

	t.Run("internal external failure", func(t *testing.T) {
		p := &fakeProvisioner{err: &service.ProvisionError{
			Step: "map_subdomain",
			Err:  assertErr("zone unavailable"),
		}}
		router := setupRouter(p, &fakeReader{}, tm)

		req := authedRequest(t, tm, userID, http.MethodPost, "/api/website/create", gin.H{
			"amplifyApp": "app123",
			"name":       "My Cafe",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "zone unavailable")
	})
}

func TestGetWebsite(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-at-least-32-characters!!", "subsite-backend", time.Hour)
	userID := uuid.New()

	reader := &fakeReader{websites: map[string]*domain.Website{
		"my-cafe": {ID: uuid.New(), Name: "My Cafe", Subdomain: "my-cafe", UserID: userID},
	}}
	router := setupRouter(&fakeProvisioner{}, reader, tm)

	t.Run("found", func(t *testing.T) {
		req := authedRequest(t, tm, userID, http.MethodGet, "/api/website/my-cafe", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "my-cafe")
	})

	t.Run("not found", func(t *testing.T) {
		req := authedRequest(t, tm, userID, http.MethodGet, "/api/website/nothing-here", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
