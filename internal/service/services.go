package service

import (
	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/store"
)

type Services struct {
	AuthService     AuthService
	LocationService LocationService
	AppInfoService  AppInfoService
	SeedService     SeedService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.AccountRepository, storages.SessionStorage, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	locationService := NewLocationService(storages.LocationRepository, logger)

	return &Services{
		AuthService:     authService,
		LocationService: locationService,
		AppInfoService:  appInfoService,
		SeedService:     NewSeedService(storages.DirectoryRepository, locationService, logger),
	}, nil
}
