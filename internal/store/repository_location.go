package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/models"
)

// locationRepository is the SQL implementation of [LocationRepository] over
// the "locations" and "store_hours" tables, joined with "districts" and
// "managers" on reads.
type locationRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocationRepository constructs a [LocationRepository] backed by db.
func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	logger.Debug().Msg("creating location repository")
	return &locationRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *locationRepository) ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.LocationDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListLocationsQuery(r.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.ListLocations").Msg("failed to query locations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	locations := make([]models.LocationDetails, 0, 50)
	for rows.Next() {
		location, scanErr := scanLocationDetails(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*locationRepository.ListLocations").Msg("failed to scan location row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*locationRepository.ListLocations").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return locations, nil
}

func (r *locationRepository) GetLocation(ctx context.Context, id string) (models.LocationDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLocationQuery(r.builder, id)
	if err != nil {
		return models.LocationDetails{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	location, err := scanLocationDetails(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocationDetails{}, ErrLocationNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.GetLocation").Str("location_id", id).Msg("failed to scan location row")
		return models.LocationDetails{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	hours, err := r.listStoreHours(ctx, id)
	if err != nil {
		return models.LocationDetails{}, err
	}
	location.Hours = hours

	return location, nil
}

func (r *locationRepository) listStoreHours(ctx context.Context, locationID string) ([]models.StoreHours, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStoreHoursQuery(r.builder, locationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.listStoreHours").Msg("failed to query store hours")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	hours := make([]models.StoreHours, 0, 7)
	for rows.Next() {
		var (
			h                   models.StoreHours
			openTime, closeTime sql.NullString
		)
		if err = rows.Scan(&h.ID, &h.LocationID, &h.DayOfWeek, &openTime, &closeTime, &h.IsClosed); err != nil {
			log.Err(err).Str("func", "*locationRepository.listStoreHours").Msg("failed to scan store hours row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		h.OpenTime = nullString(openTime)
		h.CloseTime = nullString(closeTime)
		hours = append(hours, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return hours, nil
}

// CreateLocation inserts the location and its hours in one transaction.
func (r *locationRepository) CreateLocation(ctx context.Context, location models.Location, hours []models.StoreHours) (models.Location, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLocationQuery(r.builder, location)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*locationRepository.CreateLocation").Msg("failed to insert location")
			return r.translate(err)
		}
		return r.insertStoreHours(ctx, tx, hours)
	})
	if err != nil {
		return models.Location{}, err
	}

	return location, nil
}

// UpdateLocation writes the non-nil fields of update. When update.Hours is
// set the existing schedule is deleted and replaced in the same transaction.
func (r *locationRepository) UpdateLocation(ctx context.Context, update models.LocationUpdate, updatedAt time.Time) error {
	log := logger.FromContext(ctx).With().Str("location_id", update.ID).Logger()

	query, args, err := buildUpdateLocationQuery(r.builder, update, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleteHours string
	var deleteArgs []any
	if update.Hours != nil {
		if deleteHours, deleteArgs, err = buildDeleteStoreHoursQuery(r.builder, update.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*locationRepository.UpdateLocation").Msg("failed to update location")
			return r.translate(err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrLocationNotFound
		}

		if update.Hours == nil {
			return nil
		}

		if _, err = tx.ExecContext(ctx, deleteHours, deleteArgs...); err != nil {
			log.Err(err).Str("func", "*locationRepository.UpdateLocation").Msg("failed to delete store hours")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return r.insertStoreHours(ctx, tx, *update.Hours)
	})
}

// DeactivateLocation soft-deletes a location by clearing is_active.
func (r *locationRepository) DeactivateLocation(ctx context.Context, id string, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeactivateLocationQuery(r.builder, id, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*locationRepository.DeactivateLocation").Str("location_id", id).Msg("failed to deactivate location")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrLocationNotFound
	}

	return nil
}

func (r *locationRepository) insertStoreHours(ctx context.Context, tx *sql.Tx, hours []models.StoreHours) error {
	if len(hours) == 0 {
		return nil
	}

	query, args, err := buildInsertStoreHoursQuery(r.builder, hours)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*locationRepository.insertStoreHours").Msg("failed to insert store hours")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// translate maps constraint violations on locations to domain errors.
func (r *locationRepository) translate(err error) error {
	switch r.errorClassificator.Violation(err) {
	case UniqueViolation:
		return ErrStoreNumberAlreadyExists
	case ForeignKeyViolation:
		return ErrInvalidReference
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func scanLocationDetails(row rowScanner) (models.LocationDetails, error) {
	var (
		l                                         models.LocationDetails
		phone, placeID, districtID                sql.NullString
		storeManagerID, districtManagerID         sql.NullString
		latitude, longitude                       sql.NullFloat64
		dID, dNumber, dName                       sql.NullString
		mID, mFirst, mLast, mEmail, mPhone, mRole sql.NullString
	)

	err := row.Scan(
		&l.ID, &l.StoreNumber, &l.StoreName, &l.Address, &l.City, &l.State,
		&l.ZipCode, &phone, &latitude, &longitude, &placeID,
		&districtID, &storeManagerID, &districtManagerID, &l.IsActive,
		&l.CreatedAt, &l.UpdatedAt,
		&dID, &dNumber, &dName,
		&mID, &mFirst, &mLast, &mEmail, &mPhone, &mRole,
	)
	if err != nil {
		return models.LocationDetails{}, err
	}

	l.PhoneNumber = nullString(phone)
	l.GooglePlaceID = nullString(placeID)
	l.DistrictID = nullString(districtID)
	l.StoreManagerID = nullString(storeManagerID)
	l.DistrictManagerID = nullString(districtManagerID)
	l.Latitude = nullFloat(latitude)
	l.Longitude = nullFloat(longitude)

	if dID.Valid {
		l.District = &models.District{
			ID:             dID.String,
			DistrictNumber: dNumber.String,
			DistrictName:   dName.String,
		}
	}

	if mID.Valid {
		l.StoreManager = &models.Manager{
			ID:          mID.String,
			FirstName:   mFirst.String,
			LastName:    mLast.String,
			Email:       nullString(mEmail),
			PhoneNumber: nullString(mPhone),
			Role:        mRole.String,
		}
	}

	return l, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
