package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/store"
	"github.com/MKhiriev/go-store-locator/internal/utils"
	"github.com/MKhiriev/go-store-locator/internal/validators"
	"github.com/MKhiriev/go-store-locator/models"
)

type locationService struct {
	locations store.LocationRepository
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewLocationService(locations store.LocationRepository, logger *logger.Logger) LocationService {
	return &locationService{
		locations: locations,
		validator: validators.NewLocationValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

func (s *locationService) ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.LocationDetails, error) {
	locations, err := s.locations.ListLocations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (s *locationService) GetLocation(ctx context.Context, id string) (models.LocationDetails, error) {
	if id == "" {
		return models.LocationDetails{}, ErrLocationNotFound
	}

	location, err := s.locations.GetLocation(ctx, id)
	if err != nil {
		return models.LocationDetails{}, translateLocationError(err)
	}
	return location, nil
}

// CreateLocation validates the required fields, assigns ids and stores the
// location with its hours. New locations are always active.
func (s *locationService) CreateLocation(ctx context.Context, request models.CreateLocationRequest) (models.Location, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Location{}, err
	}

	location := request.Location

	now := s.now()
	location.ID = s.ids.Generate()
	location.IsActive = true
	location.CreatedAt = now
	location.UpdatedAt = now

	hours := s.prepareHours(location.ID, request.Hours)

	created, err := s.locations.CreateLocation(ctx, location, hours)
	if err != nil {
		log.Err(err).Str("func", "*locationService.CreateLocation").Str("store_number", location.StoreNumber).Msg("failed to create location")
		return models.Location{}, translateLocationError(err)
	}

	log.Info().Str("location_id", created.ID).Msg("location created")
	return created, nil
}

// UpdateLocation applies a partial update. Required fields may change but
// never become empty.
func (s *locationService) UpdateLocation(ctx context.Context, update models.LocationUpdate) error {
	if update.ID == "" {
		return ErrLocationNotFound
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		return err
	}

	if update.Hours != nil {
		hours := s.prepareHours(update.ID, *update.Hours)
		update.Hours = &hours
	}

	if err := s.locations.UpdateLocation(ctx, update, s.now()); err != nil {
		return translateLocationError(err)
	}
	return nil
}

// DeactivateLocation soft-deletes the location.
func (s *locationService) DeactivateLocation(ctx context.Context, id string) error {
	if id == "" {
		return ErrLocationNotFound
	}

	if err := s.locations.DeactivateLocation(ctx, id, s.now()); err != nil {
		return translateLocationError(err)
	}
	return nil
}

// prepareHours assigns ids to an already validated schedule. Closed days
// carry no times.
func (s *locationService) prepareHours(locationID string, hours []models.StoreHours) []models.StoreHours {
	prepared := make([]models.StoreHours, 0, len(hours))

	for _, h := range hours {
		if h.IsClosed {
			h.OpenTime, h.CloseTime = nil, nil
		}

		h.ID = s.ids.Generate()
		h.LocationID = locationID
		prepared = append(prepared, h)
	}

	return prepared
}

func translateLocationError(err error) error {
	switch {
	case errors.Is(err, store.ErrLocationNotFound):
		return fmt.Errorf("%w: %w", ErrLocationNotFound, err)
	case errors.Is(err, store.ErrStoreNumberAlreadyExists):
		return fmt.Errorf("%w: %w", ErrStoreNumberAlreadyExists, err)
	case errors.Is(err, store.ErrInvalidReference):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}
	return err
}
