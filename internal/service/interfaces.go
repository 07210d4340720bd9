package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-store-locator/models"
)

// AuthService is the authenticator: it owns credentials and sessions.
type AuthService interface {
	// SignIn verifies the email/password pair and issues a new session.
	// Unknown emails, accounts without a password and wrong passwords all
	// yield [ErrInvalidCredentials].
	SignIn(ctx context.Context, email, password string, meta models.SessionMeta) (models.SignInResult, error)
	// SignUp provisions an account and signs it in. It yields
	// [ErrSignUpDisabled] unless sign-up is enabled.
	SignUp(ctx context.Context, request models.SignUpRequest, meta models.SessionMeta) (models.SignInResult, error)
	// SignOut revokes the session of token. Unknown or empty tokens are a no-op.
	SignOut(ctx context.Context, token string) error
	// ResolveSession returns the account behind token, or nil when the token
	// is absent, unknown or expired.
	ResolveSession(ctx context.Context, token string) (*models.Account, error)
	// ResolveSessionDetails is ResolveSession that also reports the session
	// and whether its expiry was extended.
	ResolveSessionDetails(ctx context.Context, token string) (*models.ResolvedSession, error)
	// CreateCredential inserts an account with a password credential.
	CreateCredential(ctx context.Context, email, password, displayName string) (models.Account, error)
	// RotatePassword re-hashes the password with a fresh salt and revokes
	// every session of the account.
	RotatePassword(ctx context.Context, email, newPassword string) error
	// SweepExpiredSessions deletes sessions that are already expired.
	SweepExpiredSessions(ctx context.Context) (int64, error)
}

type LocationService interface {
	ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.LocationDetails, error)
	GetLocation(ctx context.Context, id string) (models.LocationDetails, error)
	CreateLocation(ctx context.Context, request models.CreateLocationRequest) (models.Location, error)
	UpdateLocation(ctx context.Context, update models.LocationUpdate) error
	DeactivateLocation(ctx context.Context, id string) error
}

// SeedService loads the sample districts, managers and locations.
type SeedService interface {
	SeedSampleData(ctx context.Context) (models.SeedReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
	Ping(ctx context.Context) error
}

// IDGenerator produces opaque identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
