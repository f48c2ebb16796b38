// Package cache provides fast read-side lookups for session records so the
// auth middleware does not hit MongoDB on every request. The durable store
// in mongodb/ remains the source of truth; entries here are disposable.
package cache

import (
	"context"
	"time"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
)

// SessionStore caches sessions by ID with a TTL.
type SessionStore interface {
	Set(ctx context.Context, session *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Delete(ctx context.Context, sessionID string) error
	Close() error
}
