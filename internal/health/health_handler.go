package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-userreg/internal/user"
)

// UserSource is the slice of the user service the health report needs.
type UserSource interface {
	GetAll(ctx context.Context) ([]user.User, error)
}

type Handler struct {
	users     UserSource
	startedAt time.Time
}

func NewHandler(users UserSource) *Handler {
	return &Handler{
		users:     users,
		startedAt: time.Now().UTC(),
	}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "User Registry API",
		"version": "1.0.0",
		"docs":    "/docs",
		"health":  "/health",
	})
}

func (h *Handler) Health(c *gin.Context) {
	userCount := -1
	if users, err := h.users.GetAll(c.Request.Context()); err == nil {
		userCount = len(users)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"userCount": userCount,
	})
}

// Docs serves a static sketch of the API surface. Full OpenAPI
// generation is out of scope; the endpoint exists so the documentation
// paths stay public and routable.
func (h *Handler) Docs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"openapi": "3.0.0",
		"info": gin.H{
			"title":   "User Registry API",
			"version": "1.0.0",
		},
		"paths": gin.H{
			"/api/v1/users":             gin.H{"get": gin.H{"summary": "List users"}, "post": gin.H{"summary": "Create user"}},
			"/api/v1/users/{id}":        gin.H{"get": gin.H{"summary": "Get user"}, "put": gin.H{"summary": "Update user"}, "delete": gin.H{"summary": "Delete user"}},
			"/api/v1/users/{id}/exists": gin.H{"get": gin.H{"summary": "Check user existence"}},
			"/health":                   gin.H{"get": gin.H{"summary": "Health check"}},
		},
	})
}

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
	r.GET("/docs", handler.Docs)
	r.GET("/swagger", handler.Docs)
}
