package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"go-userreg/internal/auth"
	"go-userreg/internal/middleware"
	"go-userreg/internal/shared/contextutil"
)

func authRouter(t *testing.T) (*gin.Engine, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reached := false
	r := gin.New()
	r.Use(middleware.TokenAuth(auth.DefaultTokenTable(), middleware.DefaultPublicPaths, zap.NewNop()))

	record := func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{
			"userId": contextutil.GetUserID(c.Request.Context()),
			"role":   contextutil.GetUserRole(c.Request.Context()),
		})
	}
	r.GET("/", record)
	r.GET("/health", record)
	r.GET("/docs/index.html", record)
	r.GET("/api/v1/users", record)

	return r, &reached
}

func TestTokenAuth_PublicPaths(t *testing.T) {
	for _, path := range []string{"/", "/health", "/docs/index.html"} {
		r, reached := authRouter(t)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.True(t, *reached, path)
	}
}

func TestTokenAuth_MissingToken(t *testing.T) {
	r, reached := authRouter(t)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
	assert.Contains(t, w.Body.String(), `"error":"Unauthorized"`)
	assert.Contains(t, w.Body.String(), "required")
}

func TestTokenAuth_InvalidToken(t *testing.T) {
	r, reached := authRouter(t)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
	assert.Contains(t, w.Body.String(), "Invalid")
}

func TestTokenAuth_CredentialSources(t *testing.T) {
	t.Run("bearer header", func(t *testing.T) {
		r, _ := authRouter(t)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
		req.Header.Set("Authorization", "Bearer admin-token-12345")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":"admin"`)
		assert.Contains(t, w.Body.String(), `"role":"Administrator"`)
	})

	t.Run("bearer token is trimmed", func(t *testing.T) {
		r, _ := authRouter(t)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
		req.Header.Set("Authorization", "Bearer  admin-token-12345 ")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("api key header", func(t *testing.T) {
		r, _ := authRouter(t)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
		req.Header.Set("X-API-Key", "user-token-67890")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":"user1"`)
	})

	t.Run("token query parameter", func(t *testing.T) {
		r, _ := authRouter(t)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users?token=manager-token-abcde", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":"manager1"`)
	})

	t.Run("bearer wins over api key and query", func(t *testing.T) {
		r, _ := authRouter(t)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users?token=user-token-67890", nil)
		req.Header.Set("Authorization", "Bearer admin-token-12345")
		req.Header.Set("X-API-Key", "manager-token-abcde")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":"admin"`)
	})
}

func TestTokenAuth_RejectionEchoesCorrelationID(t *testing.T) {
	r, _ := authRouter(t)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("X-Correlation-ID", "corr-77")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "corr-77", w.Header().Get("X-Correlation-ID"))
	assert.Contains(t, w.Body.String(), `"correlationId":"corr-77"`)
}
