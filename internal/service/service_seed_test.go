package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/mock"
	"github.com/MKhiriev/go-store-locator/internal/store"
	"github.com/MKhiriev/go-store-locator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSeedSvc(t *testing.T) (*seedService, *mock.MockDirectoryRepository, *mock.MockLocationService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryRepository(ctrl)
	locations := mock.NewMockLocationService(ctrl)

	svc := NewSeedService(directory, locations, logger.Nop()).(*seedService)
	svc.now = func() time.Time { return testNow }

	return svc, directory, locations
}

func TestSeedService_SeedSampleData(t *testing.T) {
	svc, directory, locations := newTestSeedSvc(t)

	directory.EXPECT().SaveDistrict(gomock.Any(), gomock.Any(), testNow).Return(true, nil).Times(2)
	gomock.InOrder(
		directory.EXPECT().SaveManager(gomock.Any(), gomock.Any(), testNow).Return(true, nil),
		directory.EXPECT().SaveManager(gomock.Any(), gomock.Any(), testNow).Return(false, nil),
		directory.EXPECT().SaveManager(gomock.Any(), gomock.Any(), testNow).Return(true, nil),
	)
	gomock.InOrder(
		locations.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).Return(models.Location{ID: "l1"}, nil),
		locations.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).Return(models.Location{}, ErrStoreNumberAlreadyExists),
		locations.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).Return(models.Location{ID: "l3"}, nil),
	)

	report, err := svc.SeedSampleData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SeedReport{Districts: 2, Managers: 2, Locations: 2, Skipped: 2}, report)
}

func TestSeedService_DirectoryError(t *testing.T) {
	svc, directory, _ := newTestSeedSvc(t)
	dbErr := errors.New("db down")

	directory.EXPECT().SaveDistrict(gomock.Any(), gomock.Any(), testNow).Return(false, dbErr)

	_, err := svc.SeedSampleData(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestSeedService_LocationError(t *testing.T) {
	svc, directory, locations := newTestSeedSvc(t)

	directory.EXPECT().SaveDistrict(gomock.Any(), gomock.Any(), testNow).Return(true, nil).Times(2)
	directory.EXPECT().SaveManager(gomock.Any(), gomock.Any(), testNow).Return(true, nil).Times(3)
	locations.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).Return(models.Location{}, ErrLocationNotFound)

	report, err := svc.SeedSampleData(context.Background())
	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.Equal(t, 0, report.Locations)
}

func TestSampleLocations_PassValidation(t *testing.T) {
	validator := NewLocationService(nil, logger.Nop()).(*locationService).validator

	for _, request := range sampleLocations() {
		assert.NoError(t, validator.Validate(context.Background(), request), request.StoreNumber)
		require.Len(t, request.Hours, 7)
	}
}

func TestSeedSQLite_Idempotent(t *testing.T) {
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.Storage{
		DB:    config.DB{DSN: "sqlite://" + filepath.Join(t.TempDir(), "seed.db")},
		Cache: config.Cache{SessionTTL: -1},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	locations := NewLocationService(storages.LocationRepository, logger.Nop())
	svc := NewSeedService(storages.DirectoryRepository, locations, logger.Nop())

	report, err := svc.SeedSampleData(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SeedReport{Districts: 2, Managers: 3, Locations: 3}, report)

	report, err = svc.SeedSampleData(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SeedReport{Skipped: 8}, report)

	listed, err := locations.ListLocations(ctx, models.LocationFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 3)

	byNumber := make(map[string]models.LocationDetails, len(listed))
	for _, l := range listed {
		byNumber[l.StoreNumber] = l
	}

	downtown := byNumber["001"]
	require.NotNil(t, downtown.District)
	assert.Equal(t, "North Texas District", downtown.District.DistrictName)
	require.NotNil(t, downtown.StoreManager)
	assert.Equal(t, "Smith", downtown.StoreManager.LastName)

	canyon := byNumber["003"]
	require.NotNil(t, canyon.District)
	assert.Equal(t, "D002", canyon.District.DistrictNumber)
	assert.Nil(t, canyon.StoreManager)

	details, err := locations.GetLocation(ctx, downtown.ID)
	require.NoError(t, err)
	assert.Len(t, details.Hours, 7)
}
