package main

import (
	"go-userreg/internal/app"
	"go-userreg/internal/bootstrap"
	"go-userreg/internal/config"
	"go-userreg/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	gin.SetMode(cfg.GinMode)

	// gin.New, not gin.Default: the pipeline owns recovery and logging
	r := gin.New()

	if _, err := app.BuildApp(r, cfg, logger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Logger:       logger,
		},
		bootstrap.NewZapAuditLogger(logger),
	)
}
