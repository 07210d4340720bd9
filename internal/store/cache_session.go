package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/models"
	"github.com/allegro/bigcache/v3"
)

// sessionCache keeps JSON-encoded sessions in a bigcache instance keyed by
// token hash. Entries are evicted after the configured TTL and never
// outlive the session's own expiry.
type sessionCache struct {
	cache  *bigcache.BigCache
	now    func() time.Time
	logger *logger.Logger
}

// NewSessionCache creates the in-memory session cache. The cache and its
// cleanup goroutine are closed when ctx is done.
func NewSessionCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (SessionCache, error) {
	bcConfig := bigcache.DefaultConfig(cfg.SessionTTL)
	bcConfig.CleanWindow = cfg.SessionTTL
	bcConfig.HardMaxCacheSize = cfg.SessionMaxMB
	bcConfig.Verbose = false

	cache, err := bigcache.NewBigCache(bcConfig)
	if err != nil {
		log.Err(err).Str("func", "NewSessionCache").Msg("failed to create session cache")
		return nil, fmt.Errorf("error creating session cache: %w", err)
	}
	go func() {
		<-ctx.Done()
		_ = cache.Close()
	}()

	log.Debug().Dur("ttl", cfg.SessionTTL).Int("max_mb", cfg.SessionMaxMB).Msg("session cache enabled")
	return &sessionCache{
		cache:  cache,
		now:    time.Now,
		logger: log,
	}, nil
}

// Get returns the cached session for tokenHash. Sessions that expired while
// cached are dropped and reported as a miss.
func (c *sessionCache) Get(tokenHash string) (models.Session, bool) {
	data, err := c.cache.Get(tokenHash)
	if err != nil {
		return models.Session{}, false
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		c.logger.Err(err).Str("func", "*sessionCache.Get").Msg("dropping undecodable cache entry")
		_ = c.cache.Delete(tokenHash)
		return models.Session{}, false
	}

	if session.IsExpired(c.now()) {
		_ = c.cache.Delete(tokenHash)
		return models.Session{}, false
	}

	return session, true
}

func (c *sessionCache) Set(session models.Session) {
	data, err := json.Marshal(session)
	if err != nil {
		c.logger.Err(err).Str("func", "*sessionCache.Set").Msg("failed to encode session")
		return
	}

	if err := c.cache.Set(session.TokenHash, data); err != nil {
		c.logger.Err(err).Str("func", "*sessionCache.Set").Msg("failed to cache session")
	}
}

func (c *sessionCache) Delete(tokenHash string) {
	_ = c.cache.Delete(tokenHash)
}

func (c *sessionCache) Reset() {
	if err := c.cache.Reset(); err != nil {
		c.logger.Err(err).Str("func", "*sessionCache.Reset").Msg("failed to reset session cache")
	}
}
