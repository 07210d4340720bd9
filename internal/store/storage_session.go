// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/models"
)

// sessionStorage is the default implementation of [SessionStorage].
//
// It delegates persistence to a [SessionRepository] and keeps an optional
// [SessionCache] in front of it. Every write goes to the repository first
// and a nil cache disables caching.
//
// revocations counts deletes. A cache fill that started before a delete
// finished is dropped, so a signed-out token is never put back into the
// cache by a read that loaded the row just before it was removed.
type sessionStorage struct {
	repository SessionRepository
	cache      SessionCache
	logger     *logger.Logger

	mu          sync.Mutex
	revocations uint64
}

// NewSessionStorage constructs a [SessionStorage]. cache may be nil.
func NewSessionStorage(repository SessionRepository, cache SessionCache, logger *logger.Logger) SessionStorage {
	logger.Debug().Bool("cache", cache != nil).Msg("creating session storage")

	return &sessionStorage{
		repository: repository,
		cache:      cache,
		logger:     logger,
	}
}

// Save persists a freshly issued session.
func (s *sessionStorage) Save(ctx context.Context, session models.Session) error {
	return s.repository.CreateSession(ctx, session)
}

// FindByTokenHash returns the session from the cache when present and
// otherwise reads it from the repository and caches it.
func (s *sessionStorage) FindByTokenHash(ctx context.Context, tokenHash string) (models.Session, error) {
	if s.cache == nil {
		return s.repository.FindSessionByTokenHash(ctx, tokenHash)
	}

	if session, ok := s.cache.Get(tokenHash); ok {
		return session, nil
	}

	generation := s.generation()
	session, err := s.repository.FindSessionByTokenHash(ctx, tokenHash)
	if err != nil {
		return models.Session{}, err
	}
	s.fill(session, generation)

	return session, nil
}

// Extend stores the new expiry of session and refreshes the cached copy.
func (s *sessionStorage) Extend(ctx context.Context, session models.Session) error {
	generation := s.generation()
	if err := s.repository.ExtendSession(ctx, session.TokenHash, session.ExpiresAt, session.UpdatedAt); err != nil {
		if s.cache != nil {
			s.cache.Delete(session.TokenHash)
		}
		return err
	}
	s.fill(session, generation)

	return nil
}

// Delete removes the session from the repository, then from the cache.
func (s *sessionStorage) Delete(ctx context.Context, tokenHash string) error {
	err := s.repository.DeleteSessionByTokenHash(ctx, tokenHash)
	s.revoke(func(c SessionCache) { c.Delete(tokenHash) })

	return err
}

// DeleteByAccount revokes every session of the account. The cache is keyed
// by token hash only, so it is reset as a whole.
func (s *sessionStorage) DeleteByAccount(ctx context.Context, accountID string) (int64, error) {
	deleted, err := s.repository.DeleteAccountSessions(ctx, accountID)
	s.revoke(SessionCache.Reset)

	return deleted, err
}

// DeleteExpired removes sessions whose expiry is at or before now. Cached
// copies expire on their own.
func (s *sessionStorage) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.repository.DeleteExpiredSessions(ctx, now)
}

func (s *sessionStorage) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revocations
}

// fill caches session unless a delete ran since generation was read.
func (s *sessionStorage) fill(session models.Session, generation uint64) {
	if s.cache == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revocations != generation {
		s.logger.Debug().Str("func", "*sessionStorage.fill").Msg("skipping cache fill raced by a delete")
		return
	}
	s.cache.Set(session)
}

func (s *sessionStorage) revoke(evict func(SessionCache)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revocations++
	if s.cache != nil {
		evict(s.cache)
	}
}
