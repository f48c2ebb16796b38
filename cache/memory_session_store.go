package cache

import (
	"context"
	"errors"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
)

// ErrCacheMiss signals that a session is not in the cache. Callers fall back
// to the durable store.
var ErrCacheMiss = errors.New("session not in cache")

// MemorySessionStore implements SessionStore using ttlcache.
type MemorySessionStore struct {
	cache *ttlcache.Cache[string, *domain.Session]
}

// NewMemorySessionStore creates an in-memory session store whose entries
// expire after defaultTTL unless Set overrides it.
//
//nolint:ireturn
func NewMemorySessionStore(defaultTTL time.Duration) SessionStore {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, *domain.Session](defaultTTL),
		ttlcache.WithDisableTouchOnHit[string, *domain.Session](),
	)

	// Start the expiry loop.
	go cache.Start()

	return &MemorySessionStore{cache: cache}
}

// Set implements SessionStore.Set.
func (s *MemorySessionStore) Set(_ context.Context, session *domain.Session, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = ttlcache.DefaultTTL
	}
	s.cache.Set(session.ID, session, ttl)
	return nil
}

// Get implements SessionStore.Get.
func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*domain.Session, error) {
	item := s.cache.Get(sessionID)
	if item == nil {
		return nil, ErrCacheMiss
	}
	return item.Value(), nil
}

// Delete removes a session from the cache.
func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.cache.Delete(sessionID)
	return nil
}

// Close stops the expiry loop.
func (s *MemorySessionStore) Close() error {
	s.cache.Stop()
	return nil
}
