package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/models"
)

// accountRepository is the SQL implementation of [AccountRepository] over
// the "users" and "credentials" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAccount inserts the users row and the credentials row inside one
// transaction so that an account never exists without the credential it was
// provisioned with.
//
// Error handling:
//   - unique violation on users.email → [ErrEmailAlreadyExists].
//   - any other failure → wrapped low-level sentinel.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to begin transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildInsertUserQuery(r.builder, account)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if r.errorClassificator.Violation(err) == UniqueViolation {
			log.Debug().Str("func", "*accountRepository.CreateAccount").Msg("email already exists")
			return models.Account{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to insert user")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if account.Credential != nil {
		credential := *account.Credential
		credential.AccountID = account.ID

		query, args, err = buildInsertCredentialQuery(r.builder, credential)
		if err != nil {
			return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to insert credential")
			return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		account.Credential = &credential
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to commit transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return account, nil
}

// FindAccountByEmail returns the account with the given email together with
// its credential, or [ErrAccountNotFound].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findAccount(ctx, "email", email)
}

// FindAccountByID returns the account with the given id together with its
// credential, or [ErrAccountNotFound].
func (r *accountRepository) FindAccountByID(ctx context.Context, id string) (models.Account, error) {
	return r.findAccount(ctx, "id", id)
}

func (r *accountRepository) findAccount(ctx context.Context, column string, value string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(r.builder, column, value)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		account                         models.Account
		credID, algorithm, salt, digest sql.NullString
		credCreatedAt, credUpdatedAt    sql.NullTime
	)

	err = r.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.Email,
		&account.DisplayName,
		&account.CreatedAt,
		&account.UpdatedAt,
		&credID,
		&algorithm,
		&salt,
		&digest,
		&credCreatedAt,
		&credUpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.findAccount").Str("by", column).Msg("failed to scan account row")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if credID.Valid {
		account.Credential = &models.Credential{
			ID:        credID.String,
			AccountID: account.ID,
			Algorithm: algorithm.String,
			Salt:      salt.String,
			Digest:    digest.String,
			CreatedAt: credCreatedAt.Time,
			UpdatedAt: credUpdatedAt.Time,
		}
	}

	return account, nil
}

// UpdateCredential replaces the digest, salt and algorithm of the account's
// credential. When the account has no credential row yet, one is inserted.
func (r *accountRepository) UpdateCredential(ctx context.Context, credential models.Credential) error {
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateCredential").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildUpdateCredentialQuery(r.builder, credential)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateCredential").Msg("failed to update credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		query, args, err = buildInsertCredentialQuery(r.builder, credential)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if r.errorClassificator.Violation(err) == ForeignKeyViolation {
				return ErrAccountNotFound
			}
			log.Err(err).Str("func", "*accountRepository.UpdateCredential").Msg("failed to insert credential")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateCredential").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
