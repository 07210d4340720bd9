package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/models"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type appInfoService struct {
	appVersion  string
	environment string
	db          Pinger
	now         func() time.Time

	logger *logger.Logger
}

// NewAppInfoService builds the service behind the version and health
// endpoints. db may be nil, in which case Ping always succeeds.
func NewAppInfoService(cfg config.App, db Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		environment: cfg.Environment,
		db:          db,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health is a liveness report; it does not touch the database.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:      "healthy",
		Timestamp:   s.now().UTC().Format(time.RFC3339Nano),
		Environment: s.environment,
	}
}

func (s *appInfoService) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Ping(ctx)
}
