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

// sessionRepository is the SQL implementation of [SessionRepository] over
// the "sessions" table. Rows are keyed by the SHA-256 hash of the token.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSessionQuery(r.builder, session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.CreateSession").
			Str("account_id", session.AccountID).
			Msg("failed to insert session")
		if r.errorClassificator.Violation(err) == ForeignKeyViolation {
			return ErrAccountNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionQuery(r.builder, tokenHash)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.AccountID,
		&session.TokenHash,
		&session.IPAddress,
		&session.UserAgent,
		&session.IssuedAt,
		&session.ExpiresAt,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByTokenHash").Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (r *sessionRepository) ExtendSession(ctx context.Context, tokenHash string, expiresAt, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildExtendSessionQuery(r.builder, tokenHash, expiresAt, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ExtendSession").Msg("failed to extend session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *sessionRepository) DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error {
	query, args, err := buildDeleteSessionQuery(r.builder, tokenHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.exec(ctx, "*sessionRepository.DeleteSessionByTokenHash", query, args)
	return err
}

func (r *sessionRepository) DeleteAccountSessions(ctx context.Context, accountID string) (int64, error) {
	query, args, err := buildDeleteAccountSessionsQuery(r.builder, accountID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*sessionRepository.DeleteAccountSessions", query, args)
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredSessionsQuery(r.builder, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*sessionRepository.DeleteExpiredSessions", query, args)
}

// exec runs a DML statement and returns the number of affected rows.
func (r *sessionRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
