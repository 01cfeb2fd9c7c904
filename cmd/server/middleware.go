package main

import (
	"github.com/vitalwave/mediguide/internal/config"
	"github.com/vitalwave/mediguide/internal/logger"
	"github.com/vitalwave/mediguide/internal/middleware"
)

// buildMiddleware creates and configures the middleware stack with
// logging, CORS, and path normalization.
func buildMiddleware(loggerSys logger.System, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.Logger(loggerSys.Logger()))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(middleware.TrimSlash())
	return middlewareSys
}
