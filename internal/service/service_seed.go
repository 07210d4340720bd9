package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/store"
	"github.com/MKhiriev/go-store-locator/models"
	"github.com/google/uuid"
)

type seedService struct {
	directory store.DirectoryRepository
	locations LocationService
	now       func() time.Time

	logger *logger.Logger
}

func NewSeedService(directory store.DirectoryRepository, locations LocationService, logger *logger.Logger) SeedService {
	return &seedService{
		directory: directory,
		locations: locations,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// SeedSampleData writes the sample districts, managers and locations.
// Ids are derived from natural keys, so a second run skips every row.
func (s *seedService) SeedSampleData(ctx context.Context) (models.SeedReport, error) {
	log := logger.FromContext(ctx)

	var report models.SeedReport
	now := s.now()

	for _, district := range sampleDistricts() {
		created, err := s.directory.SaveDistrict(ctx, district, now)
		if err != nil {
			return report, fmt.Errorf("failed to seed district %s: %w", district.DistrictNumber, err)
		}
		if !created {
			report.Skipped++
			continue
		}
		report.Districts++
	}

	for _, manager := range sampleManagers() {
		created, err := s.directory.SaveManager(ctx, manager, now)
		if err != nil {
			return report, fmt.Errorf("failed to seed manager %s %s: %w", manager.FirstName, manager.LastName, err)
		}
		if !created {
			report.Skipped++
			continue
		}
		report.Managers++
	}

	for _, request := range sampleLocations() {
		_, err := s.locations.CreateLocation(ctx, request)
		switch {
		case errors.Is(err, ErrStoreNumberAlreadyExists):
			report.Skipped++
		case err != nil:
			return report, fmt.Errorf("failed to seed location %s: %w", request.StoreNumber, err)
		default:
			report.Locations++
		}
	}

	log.Info().
		Int("districts", report.Districts).
		Int("managers", report.Managers).
		Int("locations", report.Locations).
		Int("skipped", report.Skipped).
		Msg("sample data seeded")

	return report, nil
}

func seedID(kind, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("store-locator/seed/"+kind+"/"+key)).String()
}

func ptrTo[T any](v T) *T {
	return &v
}

var (
	seedNorthTexas   = seedID("district", "D001")
	seedSouthTexas   = seedID("district", "D002")
	seedJohnSmith    = seedID("manager", "john.smith")
	seedSarahJohnson = seedID("manager", "sarah.johnson")
	seedMikeDavis    = seedID("manager", "mike.davis")
)

func sampleDistricts() []models.District {
	return []models.District{
		{ID: seedNorthTexas, DistrictNumber: "D001", DistrictName: "North Texas District"},
		{ID: seedSouthTexas, DistrictNumber: "D002", DistrictName: "South Texas District"},
	}
}

func sampleManagers() []models.Manager {
	return []models.Manager{
		{
			ID:          seedJohnSmith,
			FirstName:   "John",
			LastName:    "Smith",
			Email:       ptrTo("john.smith@tootntotum.com"),
			PhoneNumber: ptrTo("(806) 555-0101"),
			Role:        models.RoleStoreManager,
		},
		{
			ID:          seedSarahJohnson,
			FirstName:   "Sarah",
			LastName:    "Johnson",
			Email:       ptrTo("sarah.johnson@tootntotum.com"),
			PhoneNumber: ptrTo("(806) 555-0102"),
			Role:        models.RoleStoreManager,
		},
		{
			ID:          seedMikeDavis,
			FirstName:   "Mike",
			LastName:    "Davis",
			Email:       ptrTo("mike.davis@tootntotum.com"),
			PhoneNumber: ptrTo("(806) 555-0201"),
			Role:        models.RoleDistrictManager,
		},
	}
}

func sampleLocations() []models.CreateLocationRequest {
	return []models.CreateLocationRequest{
		{
			Location: models.Location{
				StoreNumber:       "001",
				StoreName:         "Toot'n Totum #001 - Downtown",
				Address:           "123 Main Street",
				City:              "Amarillo",
				State:             "TX",
				ZipCode:           "79101",
				PhoneNumber:       ptrTo("(806) 555-1001"),
				Latitude:          ptrTo(35.2220),
				Longitude:         ptrTo(-101.8313),
				DistrictID:        ptrTo(seedNorthTexas),
				StoreManagerID:    ptrTo(seedJohnSmith),
				DistrictManagerID: ptrTo(seedMikeDavis),
			},
			Hours: sampleHours(),
		},
		{
			Location: models.Location{
				StoreNumber:       "002",
				StoreName:         "Toot'n Totum #002 - West Side",
				Address:           "456 Western Avenue",
				City:              "Amarillo",
				State:             "TX",
				ZipCode:           "79109",
				PhoneNumber:       ptrTo("(806) 555-1002"),
				Latitude:          ptrTo(35.1849),
				Longitude:         ptrTo(-101.8746),
				DistrictID:        ptrTo(seedNorthTexas),
				StoreManagerID:    ptrTo(seedSarahJohnson),
				DistrictManagerID: ptrTo(seedMikeDavis),
			},
			Hours: sampleHours(),
		},
		{
			Location: models.Location{
				StoreNumber:       "003",
				StoreName:         "Toot'n Totum #003 - Canyon",
				Address:           "789 University Drive",
				City:              "Canyon",
				State:             "TX",
				ZipCode:           "79015",
				PhoneNumber:       ptrTo("(806) 555-1003"),
				Latitude:          ptrTo(34.9804),
				Longitude:         ptrTo(-101.9171),
				DistrictID:        ptrTo(seedSouthTexas),
				DistrictManagerID: ptrTo(seedMikeDavis),
			},
			Hours: sampleHours(),
		},
	}
}

// sampleHours opens 06:00-23:00 on Sunday and 05:00-23:59 otherwise.
func sampleHours() []models.StoreHours {
	hours := make([]models.StoreHours, 0, 7)
	for day := 0; day < 7; day++ {
		open, closing := "05:00", "23:59"
		if day == 0 {
			open, closing = "06:00", "23:00"
		}
		hours = append(hours, models.StoreHours{DayOfWeek: day, OpenTime: ptrTo(open), CloseTime: ptrTo(closing)})
	}
	return hours
}
