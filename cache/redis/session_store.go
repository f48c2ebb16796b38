// Package redis provides a Redis-backed session cache for deployments where
// multiple backend instances share one read cache.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Jenilvaghasiya/deploy-DG-sub007/cache"
	"github.com/Jenilvaghasiya/deploy-DG-sub007/domain"
)

// SessionStore implements cache.SessionStore using Redis.
type SessionStore struct {
	client *redis.Client
	prefix string
}

// NewSessionStore creates a new SessionStore. The prefix namespaces keys so
// several environments can share one Redis.
func NewSessionStore(client *redis.Client, prefix string) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: prefix,
	}
}

func (r *SessionStore) redisKey(sessionID string) string {
	return fmt.Sprintf("%s:session:%s", r.prefix, sessionID)
}

// Set stores a session as JSON under its ID with the given TTL.
func (r *SessionStore) Set(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, r.redisKey(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session in Redis: %w", err)
	}
	return nil
}

// Get retrieves a session by ID, returning cache.ErrCacheMiss when absent.
func (r *SessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, r.redisKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, cache.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get session from Redis: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session from the cache.
func (r *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.redisKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from Redis: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (r *SessionStore) Close() error {
	return r.client.Close()
}

var _ cache.SessionStore = (*SessionStore)(nil)
