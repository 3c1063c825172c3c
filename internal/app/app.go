package app

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-userreg/internal/auth"
	"go-userreg/internal/config"
	"go-userreg/internal/health"
	"go-userreg/internal/middleware"
	"go-userreg/internal/user"
)

// BuildApp wires the pipeline and modules onto the router with
// explicit constructor injection; nothing here is ambient state. The
// stage order is fixed: error handling outermost, then authentication,
// then request logging, then the route handlers. It returns the user
// repository so callers (and tests) can observe the store directly.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (user.Repository, error) {
	// Middleware chain. Ordering is observable behavior: requests
	// rejected by auth produce no "request started" line because
	// logging runs after authentication.
	router.Use(middleware.ErrorHandler(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{"GET", "HEAD", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-API-Key", "X-Correlation-ID"},
	}))
	router.Use(middleware.TokenAuth(auth.DefaultTokenTable(), middleware.DefaultPublicPaths, logger))
	router.Use(middleware.RequestLogger(logger, cfg.SlowRequestThreshold))

	// Repository, service, handlers
	repo := user.NewMemoryRepository(user.WithLatency(cfg.RepoLatency))
	if err := seedUsers(repo); err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	userService := user.NewService(repo)
	userHandler := user.NewHandler(userService, logger)
	healthHandler := health.NewHandler(userService)

	// Routes
	health.RegisterRoutes(router, healthHandler)

	api := router.Group("/api/v1")
	{
		user.RegisterRoutes(api, userHandler)
	}

	return repo, nil
}

// seedUsers loads the fixed demo records through Create so they pass
// the same normalization and uniqueness rules as runtime writes.
func seedUsers(repo user.Repository) error {
	ctx := context.Background()
	seeds := []user.CreateUserRequest{
		{
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john.doe@example.com",
			PhoneNumber: "+1-555-0101",
			Department:  "Engineering",
			Position:    "Senior Developer",
		},
		{
			FirstName:   "Jane",
			LastName:    "Smith",
			Email:       "jane.smith@example.com",
			PhoneNumber: "+1-555-0102",
			Department:  "Marketing",
			Position:    "Marketing Manager",
		},
		{
			FirstName:  "Bob",
			LastName:   "Johnson",
			Email:      "bob.johnson@example.com",
			Department: "Sales",
			Position:   "Sales Representative",
		},
	}

	for _, seed := range seeds {
		if _, err := repo.Create(ctx, seed); err != nil {
			return err
		}
	}
	return nil
}
