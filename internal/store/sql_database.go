// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

// Dialect identifies the SQL database behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB wraps *sql.DB with the dialect-specific query builder and error
// classifier used by every repository.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// newDB assembles a [DB] for an already opened connection.
func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// NewConnect opens the database named by cfg.DSN. PostgreSQL URLs and
// key/value DSNs go to pgx; "sqlite://", "file:" and ":memory:" go to SQLite.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if dsn, ok := sqliteDSN(cfg.DSN); ok {
		return NewConnectSQLite(ctx, dsn, log)
	}

	return NewConnectPostgres(ctx, cfg.DSN, log)
}

const (
	txRetries    = 2
	txRetryDelay = 50 * time.Millisecond
)

// inTx runs fn inside a transaction and commits it. A failure the dialect
// classifies as [Retryable] (deadlock, serialization failure, busy SQLite
// file) rolls back and re-runs fn with exponential backoff, at most
// txRetries more times.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	backoff := retry.WithMaxRetries(txRetries, retry.NewExponential(txRetryDelay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.runTx(ctx, fn)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("transaction failed, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	dialect := migrations.DialectPostgres
	if db.dialect == DialectSQLite {
		dialect = migrations.DialectSQLite
	}

	if err := migrations.Migrate(db.DB, dialect); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return fmt.Errorf("error applying migrations: %w", err)
	}

	return nil
}

// sqliteDSN reports whether dsn addresses a SQLite database and returns the
// driver DSN with foreign keys enabled.
func sqliteDSN(dsn string) (string, bool) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		dsn = strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "sqlite3://"):
		dsn = strings.TrimPrefix(dsn, "sqlite3://")
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
	default:
		return "", false
	}

	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_foreign_keys=on"
	}

	return dsn, true
}
