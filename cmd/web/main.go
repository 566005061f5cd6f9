package main

import (
	"time"

	"github.com/Mauricio62/planilla-web/internal/app"
	"github.com/Mauricio62/planilla-web/internal/bootstrap"
	"github.com/Mauricio62/planilla-web/internal/config"
	"github.com/Mauricio62/planilla-web/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	cfg := config.Load()

	router, auditLogger, err := app.BuildApp(cfg)
	if err != nil {
		logger.Fatal("no se pudo armar la aplicación", zap.Error(err))
	}

	bootstrap.StartHTTPServer(
		router,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}
