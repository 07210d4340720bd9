package http

import (
	"time"

	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/service"
)

type Handler struct {
	services *service.Services

	cookie          config.Cookie
	sessionLifetime time.Duration
	signUpEnabled   bool
	allowedOrigins  []string
	requestTimeout  time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		cookie:          cfg.Cookie,
		sessionLifetime: cfg.App.SessionLifetime,
		signUpEnabled:   cfg.App.SignUpEnabled,
		allowedOrigins:  cfg.Server.AllowedOrigins,
		requestTimeout:  cfg.Server.RequestTimeout,
		logger:          logger,
	}
}
