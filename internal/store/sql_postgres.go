package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	pgMaxOpenConns    = 10
	pgMaxIdleConns    = 4
	pgConnMaxIdleTime = 5 * time.Minute
)

// NewConnectPostgres opens a pgx-backed pool for dsn and pings it.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening postgres pool")
		return nil, fmt.Errorf("error opening postgres pool: %w", err)
	}

	conn.SetMaxOpenConns(pgMaxOpenConns)
	conn.SetMaxIdleConns(pgMaxIdleConns)
	conn.SetConnMaxIdleTime(pgConnMaxIdleTime)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("postgres is unreachable")
		_ = conn.Close()
		return nil, fmt.Errorf("error pinging postgres: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to postgres")

	return newDB(conn, DialectPostgres, log), nil
}
