package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation() models.Location {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.Location{
		ID:          "loc-1",
		StoreNumber: "101",
		StoreName:   "Main Street",
		Address:     "1 Main St",
		City:        "Springfield",
		State:       "IL",
		ZipCode:     "62701",
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateLocation_RetriesDeadlock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO locations").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO locations").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateLocation(context.Background(), testLocation(), nil)
	require.NoError(t, err)
	assert.Equal(t, "loc-1", created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLocation_DuplicateStoreNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO locations").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateLocation(context.Background(), testLocation(), nil)
	assert.ErrorIs(t, err, ErrStoreNumberAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLocation_GivesUpAfterAttempts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db, logger.Nop())

	for range txRetries + 1 {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO locations").WillReturnError(pgError(pgerrcode.SerializationFailure))
		mock.ExpectRollback()
	}

	_, err := repo.CreateLocation(context.Background(), testLocation(), nil)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateLocation_ReplacesHours(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db, logger.Nop())
	name := "Renamed"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE locations").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM store_hours").WithArgs("loc-1").WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectCommit()

	err := repo.UpdateLocation(context.Background(), models.LocationUpdate{
		ID:        "loc-1",
		StoreName: &name,
		Hours:     &[]models.StoreHours{},
	}, time.Now())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateLocation_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db, logger.Nop())
	name := "Renamed"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE locations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateLocation(context.Background(), models.LocationUpdate{ID: "missing", StoreName: &name}, time.Now())
	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_StopsOnCanceledContext(t *testing.T) {
	db, mock := newMockDB(t)
	ctx, cancel := context.WithCancel(context.Background())

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err := db.inTx(ctx, func(tx *sql.Tx) error {
		calls++
		cancel()
		return pgError(pgerrcode.DeadlockDetected)
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
