package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-store-locator/models"
)

// AccountRepository persists accounts together with their password
// credential.
type AccountRepository interface {
	// CreateAccount inserts the account and, when present, its credential in
	// one transaction. A taken email yields [ErrEmailAlreadyExists].
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	// FindAccountByEmail looks an account up by its normalized email.
	// A miss yields [ErrAccountNotFound].
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	// FindAccountByID looks an account up by id. A miss yields [ErrAccountNotFound].
	FindAccountByID(ctx context.Context, id string) (models.Account, error)
	// UpdateCredential replaces the credential of credential.AccountID,
	// creating it when the account had none.
	UpdateCredential(ctx context.Context, credential models.Credential) error
}

// SessionRepository is the relational store of sessions keyed by token hash.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	// FindSessionByTokenHash yields [ErrSessionNotFound] on a miss.
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (models.Session, error)
	ExtendSession(ctx context.Context, tokenHash string, expiresAt, updatedAt time.Time) error
	// DeleteSessionByTokenHash succeeds when no row matches.
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error
	DeleteAccountSessions(ctx context.Context, accountID string) (int64, error)
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// SessionCache is a process-local read-through cache of sessions.
type SessionCache interface {
	Get(tokenHash string) (models.Session, bool)
	Set(session models.Session)
	Delete(tokenHash string)
	Reset()
}

// SessionStorage is what the service layer uses for sessions: the
// repository with an optional cache in front of it.
type SessionStorage interface {
	Save(ctx context.Context, session models.Session) error
	FindByTokenHash(ctx context.Context, tokenHash string) (models.Session, error)
	Extend(ctx context.Context, session models.Session) error
	Delete(ctx context.Context, tokenHash string) error
	DeleteByAccount(ctx context.Context, accountID string) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// LocationRepository persists store locations and their hours.
type LocationRepository interface {
	ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.LocationDetails, error)
	// GetLocation yields [ErrLocationNotFound] on a miss.
	GetLocation(ctx context.Context, id string) (models.LocationDetails, error)
	CreateLocation(ctx context.Context, location models.Location, hours []models.StoreHours) (models.Location, error)
	// UpdateLocation applies the non-nil fields of update and, when
	// update.Hours is set, replaces the schedule in the same transaction.
	UpdateLocation(ctx context.Context, update models.LocationUpdate, updatedAt time.Time) error
	DeactivateLocation(ctx context.Context, id string, updatedAt time.Time) error
}

// DirectoryRepository stores districts and managers. Save reports false
// when the row already existed and was left unchanged.
type DirectoryRepository interface {
	SaveDistrict(ctx context.Context, district models.District, at time.Time) (bool, error)
	SaveManager(ctx context.Context, manager models.Manager, at time.Time) (bool, error)
}

// ErrorClassificator maps driver errors to retry and constraint categories.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	Violation(err error) Violation
}
