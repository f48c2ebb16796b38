package cache

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
)

// SessionReader is the read side of the session repository.
type SessionReader interface {
	GetSessionByID(ctx context.Context, id string) (*domain.Session, error)
}

// ReadThroughSessionReader serves session lookups from the cache and falls
// back to the durable store, populating the cache on the way out. Cache
// faults are logged and degrade to direct reads, never surfaced.
type ReadThroughSessionReader struct {
	source SessionReader
	store  SessionStore
	ttl    time.Duration
}

// NewReadThroughSessionReader wraps source with store.
func NewReadThroughSessionReader(source SessionReader, store SessionStore, ttl time.Duration) *ReadThroughSessionReader {
	return &ReadThroughSessionReader{source: source, store: store, ttl: ttl}
}

// GetSessionByID implements SessionReader.
func (r *ReadThroughSessionReader) GetSessionByID(ctx context.Context, id string) (*domain.Session, error) {
	cached, err := r.store.Get(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Warn().Err(err).Str("sessionID", id).Msg("Session cache read failed, falling back to store")
	}

	session, err := r.source.GetSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if setErr := r.store.Set(ctx, session, r.ttl); setErr != nil {
		log.Warn().Err(setErr).Str("sessionID", id).Msg("Failed to populate session cache")
	}
	return session, nil
}

// Invalidate drops the cached copy, typically after the logout-time write.
func (r *ReadThroughSessionReader) Invalidate(ctx context.Context, id string) {
	if err := r.store.Delete(ctx, id); err != nil {
		log.Warn().Err(err).Str("sessionID", id).Msg("Failed to invalidate session cache entry")
	}
}
