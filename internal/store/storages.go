package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/logger"
)

// Storages bundles every repository the service layer depends on together
// with the connection they share.
type Storages struct {
	AccountRepository   AccountRepository
	SessionStorage      SessionStorage
	LocationRepository  LocationRepository
	DirectoryRepository DirectoryRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// wires the repositories. The session cache is created when enabled.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	var cache SessionCache
	if cfg.Cache.Enabled() {
		cache, err = NewSessionCache(ctx, cfg.Cache, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return newStorages(db, cache, log), nil
}

func newStorages(db *DB, cache SessionCache, log *logger.Logger) *Storages {
	return &Storages{
		AccountRepository:   NewAccountRepository(db, log),
		SessionStorage:      NewSessionStorage(NewSessionRepository(db, log), cache, log),
		LocationRepository:  NewLocationRepository(db, log),
		DirectoryRepository: NewDirectoryRepository(db, log),
		db:                  db,
	}
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
