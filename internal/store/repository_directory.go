package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/models"
)

// directoryRepository writes the districts and managers that locations
// reference. Inserts skip rows whose id or district number already exists.
type directoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewDirectoryRepository(db *DB, logger *logger.Logger) DirectoryRepository {
	logger.Debug().Msg("creating directory repository")
	return &directoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *directoryRepository) SaveDistrict(ctx context.Context, district models.District, at time.Time) (bool, error) {
	query, args, err := buildInsertDistrictQuery(r.builder, district, at)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.insert(ctx, "*directoryRepository.SaveDistrict", query, args)
}

func (r *directoryRepository) SaveManager(ctx context.Context, manager models.Manager, at time.Time) (bool, error) {
	query, args, err := buildInsertManagerQuery(r.builder, manager, at)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.insert(ctx, "*directoryRepository.SaveManager", query, args)
}

func (r *directoryRepository) insert(ctx context.Context, fn, query string, args []any) (bool, error) {
	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("insert failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected > 0, nil
}
