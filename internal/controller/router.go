package controller

import (
	"gigflow/internal/config"
	"gigflow/internal/service"
	"gigflow/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"go.uber.org/zap"
)

type Options struct {
	Logger    *zap.Logger
	Metrics   *metrics.Manager
	RateLimit config.RateLimitConfig
}

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, opts Options) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	handler.Use(middleware.Recover())
	handler.Use(requestLogger(logger.Named("http"), opts.Metrics))
	handler.GET("/metrics", echo.WrapHandler(opts.Metrics.Handler()))

	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	if opts.RateLimit.RequestsPerSecond > 0 {
		api.Use(newUserRateLimiter(opts.RateLimit.RequestsPerSecond, opts.RateLimit.Burst).middleware())
	}

	newDiagnosticRoutesHandler(api, services)
	newGigRoutesHandler(api, services, validate)
	newBidRoutesHandler(api, services, validate)
	newDashboardRoutesHandler(api, services, validate)
}
