package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/mock"
	"github.com/MKhiriev/go-store-locator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionStorage(t *testing.T, withCache bool) (SessionStorage, *mock.MockSessionRepository, *mock.MockSessionCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	if !withCache {
		return NewSessionStorage(repo, nil, logger.Nop()), repo, nil
	}

	cache := mock.NewMockSessionCache(ctrl)
	return NewSessionStorage(repo, cache, logger.Nop()), repo, cache
}

func testSession() models.Session {
	now := time.Now().UTC()
	return models.Session{
		ID:        "s-1",
		AccountID: "acc-1",
		TokenHash: "hash",
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
		UpdatedAt: now,
	}
}

func TestSessionStorage_FindByTokenHash_CacheHit(t *testing.T) {
	storage, _, cache := newTestSessionStorage(t, true)
	session := testSession()

	cache.EXPECT().Get("hash").Return(session, true)

	got, err := storage.FindByTokenHash(context.Background(), "hash")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionStorage_FindByTokenHash_CacheMiss(t *testing.T) {
	storage, repo, cache := newTestSessionStorage(t, true)
	session := testSession()

	gomock.InOrder(
		cache.EXPECT().Get("hash").Return(models.Session{}, false),
		repo.EXPECT().FindSessionByTokenHash(gomock.Any(), "hash").Return(session, nil),
		cache.EXPECT().Set(session),
	)

	got, err := storage.FindByTokenHash(context.Background(), "hash")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionStorage_FindByTokenHash_NotFoundIsNotCached(t *testing.T) {
	storage, repo, cache := newTestSessionStorage(t, true)

	cache.EXPECT().Get("hash").Return(models.Session{}, false)
	repo.EXPECT().FindSessionByTokenHash(gomock.Any(), "hash").Return(models.Session{}, ErrSessionNotFound)

	_, err := storage.FindByTokenHash(context.Background(), "hash")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStorage_WithoutCache(t *testing.T) {
	storage, repo, _ := newTestSessionStorage(t, false)
	session := testSession()
	ctx := context.Background()

	repo.EXPECT().CreateSession(gomock.Any(), session).Return(nil)
	repo.EXPECT().FindSessionByTokenHash(gomock.Any(), "hash").Return(session, nil)
	repo.EXPECT().ExtendSession(gomock.Any(), "hash", session.ExpiresAt, session.UpdatedAt).Return(nil)
	repo.EXPECT().DeleteSessionByTokenHash(gomock.Any(), "hash").Return(nil)
	repo.EXPECT().DeleteAccountSessions(gomock.Any(), "acc-1").Return(int64(2), nil)

	require.NoError(t, storage.Save(ctx, session))
	_, err := storage.FindByTokenHash(ctx, "hash")
	require.NoError(t, err)
	require.NoError(t, storage.Extend(ctx, session))
	require.NoError(t, storage.Delete(ctx, "hash"))

	deleted, err := storage.DeleteByAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestSessionStorage_Extend_RefreshesCache(t *testing.T) {
	storage, repo, cache := newTestSessionStorage(t, true)
	session := testSession()

	repo.EXPECT().ExtendSession(gomock.Any(), "hash", session.ExpiresAt, session.UpdatedAt).Return(nil)
	cache.EXPECT().Set(session)

	require.NoError(t, storage.Extend(context.Background(), session))
}

func TestSessionStorage_Extend_FailureEvictsCache(t *testing.T) {
	storage, repo, cache := newTestSessionStorage(t, true)
	session := testSession()

	repo.EXPECT().ExtendSession(gomock.Any(), "hash", session.ExpiresAt, session.UpdatedAt).Return(ErrSessionNotFound)
	cache.EXPECT().Delete("hash")

	assert.ErrorIs(t, storage.Extend(context.Background(), session), ErrSessionNotFound)
}

func TestSessionStorage_Delete_EvictsCache(t *testing.T) {
	storage, repo, cache := newTestSessionStorage(t, true)

	cache.EXPECT().Delete("hash")
	repo.EXPECT().DeleteSessionByTokenHash(gomock.Any(), "hash").Return(nil)

	require.NoError(t, storage.Delete(context.Background(), "hash"))
}

func TestSessionStorage_DeleteByAccount_ResetsCacheOnError(t *testing.T) {
	storage, repo, cache := newTestSessionStorage(t, true)
	dbErr := errors.New("db down")

	repo.EXPECT().DeleteAccountSessions(gomock.Any(), "acc-1").Return(int64(0), dbErr)
	cache.EXPECT().Reset()

	_, err := storage.DeleteByAccount(context.Background(), "acc-1")
	assert.ErrorIs(t, err, dbErr)
}

func TestSessionStorage_DeleteExpired(t *testing.T) {
	storage, repo, _ := newTestSessionStorage(t, true)
	now := time.Now()

	repo.EXPECT().DeleteExpiredSessions(gomock.Any(), now).Return(int64(3), nil)

	deleted, err := storage.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

// pausingSessionRepository is an in-memory SessionRepository whose first
// lookup blocks after reading the row until resume is closed.
type pausingSessionRepository struct {
	SessionRepository

	mu       sync.Mutex
	sessions map[string]models.Session

	once   sync.Once
	loaded chan struct{}
	resume chan struct{}
}

func newPausingSessionRepository(sessions ...models.Session) *pausingSessionRepository {
	r := &pausingSessionRepository{
		sessions: make(map[string]models.Session),
		loaded:   make(chan struct{}),
		resume:   make(chan struct{}),
	}
	for _, s := range sessions {
		r.sessions[s.TokenHash] = s
	}
	return r
}

func (r *pausingSessionRepository) FindSessionByTokenHash(_ context.Context, tokenHash string) (models.Session, error) {
	r.mu.Lock()
	session, ok := r.sessions[tokenHash]
	r.mu.Unlock()

	r.once.Do(func() {
		close(r.loaded)
		<-r.resume
	})

	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (r *pausingSessionRepository) DeleteSessionByTokenHash(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, tokenHash)
	return nil
}

func (r *pausingSessionRepository) DeleteAccountSessions(_ context.Context, accountID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for hash, s := range r.sessions {
		if s.AccountID == accountID {
			delete(r.sessions, hash)
			deleted++
		}
	}
	return deleted, nil
}

func TestSessionStorage_DeleteDuringReadIsNotResurrected(t *testing.T) {
	tests := []struct {
		name   string
		delete func(ctx context.Context, storage SessionStorage) error
	}{
		{
			name: "sign-out",
			delete: func(ctx context.Context, storage SessionStorage) error {
				return storage.Delete(ctx, "hash")
			},
		},
		{
			name: "revoke account sessions",
			delete: func(ctx context.Context, storage SessionStorage) error {
				_, err := storage.DeleteByAccount(ctx, "acc-1")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newPausingSessionRepository(testSession())
			storage := NewSessionStorage(repo, newTestSessionCache(t), logger.Nop())

			readErr := make(chan error, 1)
			go func() {
				_, err := storage.FindByTokenHash(ctx, "hash")
				readErr <- err
			}()

			<-repo.loaded
			require.NoError(t, tt.delete(ctx, storage))
			close(repo.resume)

			// the in-flight read loaded the row before it was deleted
			require.NoError(t, <-readErr)

			_, err := storage.FindByTokenHash(ctx, "hash")
			assert.ErrorIs(t, err, ErrSessionNotFound)
		})
	}
}

func TestSessionStorage_FillAfterDeleteIsCached(t *testing.T) {
	ctx := context.Background()
	session := testSession()
	repo := newPausingSessionRepository(session)
	close(repo.resume)
	cache := newTestSessionCache(t)
	storage := NewSessionStorage(repo, cache, logger.Nop())

	require.NoError(t, storage.Delete(ctx, "other"))

	_, err := storage.FindByTokenHash(ctx, "hash")
	require.NoError(t, err)

	_, ok := cache.Get("hash")
	assert.True(t, ok)
}
