package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/store"
	"github.com/MKhiriev/go-store-locator/internal/utils"
	"github.com/MKhiriev/go-store-locator/models"
)

// authService is the concrete implementation of AuthService.
// It verifies passwords with a [PasswordHasher] bound to the server secret
// and keeps sessions in a [store.SessionStorage] keyed by token hash.
type authService struct {
	accounts store.AccountRepository
	sessions store.SessionStorage

	// hasher produces every new digest; hashers verifies digests of any
	// supported algorithm.
	hasher  PasswordHasher
	hashers map[string]PasswordHasher

	sessionLifetime  time.Duration
	sessionSliding   bool
	sessionUpdateAge time.Duration
	signUpEnabled    bool

	ids           IDGenerator
	now           func() time.Time
	generateToken func() (string, error)
	generateSalt  func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs the authenticator. The secret is validated again
// here so that a service can never be built without one.
func NewAuthService(accounts store.AccountRepository, sessions store.SessionStorage, cfg config.App, logger *logger.Logger) (AuthService, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if len(secret) < config.MinSecretLength {
		return nil, fmt.Errorf("%w: server secret must be at least %d characters", ErrMisconfiguration, config.MinSecretLength)
	}

	algorithm := cfg.PasswordAlgorithm
	if algorithm == "" {
		algorithm = config.DefaultPasswordAlgorithm
	}
	hasher, err := NewPasswordHasher(algorithm, secret)
	if err != nil {
		return nil, err
	}

	lifetime := cfg.SessionLifetime
	if lifetime <= 0 {
		lifetime = config.DefaultSessionLifetime
	}

	return &authService{
		accounts:         accounts,
		sessions:         sessions,
		hasher:           hasher,
		hashers:          newPasswordHashers(secret),
		sessionLifetime:  lifetime,
		sessionSliding:   cfg.SessionSliding,
		sessionUpdateAge: cfg.SessionUpdateAge,
		signUpEnabled:    cfg.SignUpEnabled,
		ids:              utils.NewUUIDGenerator(),
		now:              func() time.Time { return time.Now().UTC() },
		generateToken:    GenerateToken,
		generateSalt:     GenerateSalt,
		logger:           logger,
	}, nil
}

// SignIn authenticates email/password and issues a session.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials for an unknown email, an account without a
//     password, or a wrong password. The caller cannot tell these apart.
//   - ErrMisconfiguration if the stored digest uses an unknown algorithm.
func (a *authService) SignIn(ctx context.Context, email, password string, meta models.SessionMeta) (models.SignInResult, error) {
	log := logger.FromContext(ctx)

	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.SignInResult{}, ErrInvalidDataProvided
	}

	account, err := a.accounts.FindAccountByEmail(ctx, email)
	if errors.Is(err, store.ErrAccountNotFound) {
		// keep the timing of unknown emails close to wrong passwords
		a.hasher.Hash(password, "")
		log.Debug().Str("func", "*authService.SignIn").Msg("sign-in for unknown email")
		return models.SignInResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.SignIn").Msg("account lookup failed")
		return models.SignInResult{}, fmt.Errorf("account lookup failed: %w", err)
	}

	if !account.HasPassword() {
		log.Debug().Str("account_id", account.ID).Msg("sign-in for account without password")
		return models.SignInResult{}, ErrInvalidCredentials
	}

	credential := account.Credential
	hasher, ok := a.hashers[credential.Algorithm]
	if !ok {
		log.Error().Str("account_id", account.ID).Str("algorithm", credential.Algorithm).Msg("unknown password algorithm")
		return models.SignInResult{}, ErrMisconfiguration
	}

	if !hasher.Verify(password, credential.Salt, credential.Digest) {
		log.Debug().Str("account_id", account.ID).Msg("wrong password")
		return models.SignInResult{}, ErrInvalidCredentials
	}

	if credential.Algorithm != a.hasher.Algorithm() {
		a.rehash(ctx, account, password)
	}

	return a.issueSession(ctx, account, meta)
}

// SignUp provisions an account and immediately signs it in.
func (a *authService) SignUp(ctx context.Context, request models.SignUpRequest, meta models.SessionMeta) (models.SignInResult, error) {
	if !a.signUpEnabled {
		return models.SignInResult{}, ErrSignUpDisabled
	}

	account, err := a.CreateCredential(ctx, request.Email, request.Password, request.Name)
	if err != nil {
		return models.SignInResult{}, err
	}

	return a.issueSession(ctx, account, meta)
}

// SignOut deletes the session of token. It never fails: a storage error is
// logged and the client is signed out anyway.
func (a *authService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := a.sessions.Delete(ctx, HashToken(token)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.SignOut").Msg("failed to delete session")
	}

	return nil
}

func (a *authService) ResolveSession(ctx context.Context, token string) (*models.Account, error) {
	resolved, err := a.ResolveSessionDetails(ctx, token)
	if err != nil || resolved == nil {
		return nil, err
	}

	return &resolved.Account, nil
}

// ResolveSessionDetails looks the session of token up and returns the
// public fields of its account. Expired sessions resolve to nil; they are
// removed by the sweeper, not here.
//
// With sliding expiration enabled, a session whose last refresh is older
// than the update age gets ExpiresAt moved to now + lifetime.
func (a *authService) ResolveSessionDetails(ctx context.Context, token string) (*models.ResolvedSession, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil, nil
	}

	session, err := a.sessions.FindByTokenHash(ctx, HashToken(token))
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ResolveSessionDetails").Msg("session lookup failed")
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}

	now := a.now()
	if session.IsExpired(now) {
		return nil, nil
	}

	account, err := a.accounts.FindAccountByID(ctx, session.AccountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ResolveSessionDetails").Msg("account lookup failed")
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}

	resolved := &models.ResolvedSession{
		Account: account.Public(),
		Session: session,
	}

	if a.sessionSliding && now.Sub(session.UpdatedAt) >= a.sessionUpdateAge {
		extended := session
		extended.ExpiresAt = now.Add(a.sessionLifetime)
		extended.UpdatedAt = now

		if err = a.sessions.Extend(ctx, extended); err != nil {
			log.Err(err).Str("func", "*authService.ResolveSessionDetails").Msg("failed to extend session")
		} else {
			resolved.Session = extended
			resolved.Refreshed = true
		}
	}

	return resolved, nil
}

// CreateCredential provisions an account with a salted password digest.
// Account and credential are inserted in one transaction.
func (a *authService) CreateCredential(ctx context.Context, email, password, displayName string) (models.Account, error) {
	log := logger.FromContext(ctx)

	email = models.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") || password == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	credential, err := a.newCredential(password)
	if err != nil {
		return models.Account{}, err
	}

	now := a.now()
	credential.CreatedAt = now
	credential.UpdatedAt = now

	account := models.Account{
		ID:          a.ids.Generate(),
		Email:       email,
		DisplayName: strings.TrimSpace(displayName),
		CreatedAt:   now,
		UpdatedAt:   now,
		Credential:  &credential,
	}
	credential.AccountID = account.ID

	created, err := a.accounts.CreateAccount(ctx, account)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.Account{}, fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateCredential").Msg("account creation failed")
		return models.Account{}, fmt.Errorf("account creation failed: %w", err)
	}

	log.Info().Str("account_id", created.ID).Msg("account provisioned")
	return created.Public(), nil
}

// RotatePassword replaces the digest of the account behind email and
// revokes all of its sessions. The account id does not change.
func (a *authService) RotatePassword(ctx context.Context, email, newPassword string) error {
	log := logger.FromContext(ctx)

	email = models.NormalizeEmail(email)
	if email == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	account, err := a.accounts.FindAccountByEmail(ctx, email)
	if errors.Is(err, store.ErrAccountNotFound) {
		return fmt.Errorf("%w: %w", ErrAccountNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("account lookup failed: %w", err)
	}

	if err = a.storeCredential(ctx, account, newPassword); err != nil {
		return err
	}

	revoked, err := a.sessions.DeleteByAccount(ctx, account.ID)
	if err != nil {
		log.Err(err).Str("func", "*authService.RotatePassword").Msg("failed to revoke sessions")
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	log.Info().Str("account_id", account.ID).Int64("revoked_sessions", revoked).Msg("password rotated")
	return nil
}

func (a *authService) SweepExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := a.sessions.DeleteExpired(ctx, a.now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return deleted, nil
}

func (a *authService) issueSession(ctx context.Context, account models.Account, meta models.SessionMeta) (models.SignInResult, error) {
	log := logger.FromContext(ctx)

	token, err := a.generateToken()
	if err != nil {
		log.Err(err).Str("func", "*authService.issueSession").Msg("token generation failed")
		return models.SignInResult{}, err
	}

	now := a.now()
	session := models.Session{
		ID:        a.ids.Generate(),
		AccountID: account.ID,
		TokenHash: HashToken(token),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		IssuedAt:  now,
		ExpiresAt: now.Add(a.sessionLifetime),
		UpdatedAt: now,
	}

	if err = a.sessions.Save(ctx, session); err != nil {
		log.Err(err).Str("func", "*authService.issueSession").Msg("failed to save session")
		return models.SignInResult{}, fmt.Errorf("failed to save session: %w", err)
	}

	log.Info().Str("account_id", account.ID).Time("expires_at", session.ExpiresAt).Msg("session issued")
	return models.SignInResult{
		Account: account.Public(),
		Session: session,
		Token:   token,
	}, nil
}

// rehash moves a verified password to the configured algorithm. Failures
// only cost the upgrade, never the sign-in.
func (a *authService) rehash(ctx context.Context, account models.Account, password string) {
	if err := a.storeCredential(ctx, account, password); err != nil {
		logger.FromContext(ctx).Err(err).Str("account_id", account.ID).Msg("password rehash failed")
	}
}

func (a *authService) storeCredential(ctx context.Context, account models.Account, password string) error {
	credential, err := a.newCredential(password)
	if err != nil {
		return err
	}

	now := a.now()
	credential.AccountID = account.ID
	credential.CreatedAt = now
	credential.UpdatedAt = now
	if account.Credential != nil {
		credential.ID = account.Credential.ID
		credential.CreatedAt = account.Credential.CreatedAt
	}

	if err = a.accounts.UpdateCredential(ctx, credential); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return fmt.Errorf("%w: %w", ErrAccountNotFound, err)
		}
		return fmt.Errorf("failed to store credential: %w", err)
	}

	return nil
}

func (a *authService) newCredential(password string) (models.Credential, error) {
	salt, err := a.generateSalt()
	if err != nil {
		return models.Credential{}, err
	}

	return models.Credential{
		ID:        a.ids.Generate(),
		Algorithm: a.hasher.Algorithm(),
		Salt:      salt,
		Digest:    a.hasher.Hash(password, salt),
	}, nil
}
