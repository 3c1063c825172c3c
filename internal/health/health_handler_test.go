package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-userreg/internal/health"
	"go-userreg/internal/user"
)

type fakeUserSource struct {
	GetAllFn func(ctx context.Context) ([]user.User, error)
}

func (f *fakeUserSource) GetAll(ctx context.Context) ([]user.User, error) {
	return f.GetAllFn(ctx)
}

func setupRouter(src health.UserSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	health.RegisterRoutes(r, health.NewHandler(src))
	return r
}

func TestHealth(t *testing.T) {
	t.Run("reports user count", func(t *testing.T) {
		r := setupRouter(&fakeUserSource{
			GetAllFn: func(ctx context.Context) ([]user.User, error) {
				return []user.User{{ID: 1}, {ID: 2}}, nil
			},
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"healthy"`)
		assert.Contains(t, w.Body.String(), `"userCount":2`)
	})

	t.Run("stays healthy when the store misbehaves", func(t *testing.T) {
		r := setupRouter(&fakeUserSource{
			GetAllFn: func(ctx context.Context) ([]user.User, error) {
				return nil, errors.New("store fault")
			},
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userCount":-1`)
	})
}

func TestRootAndDocs(t *testing.T) {
	r := setupRouter(&fakeUserSource{
		GetAllFn: func(ctx context.Context) ([]user.User, error) { return nil, nil },
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User Registry API")

	for _, path := range []string{"/docs", "/swagger"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "openapi", path)
	}
}
