// Package snapshot mirrors board snapshots to Redis for readers outside the match.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"retroflow/internal/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a mirrored snapshot outlives its last update.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "retroflow:snapshot:"

// RedisStore implements ports.SnapshotMirrorPort on a Redis string per session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redisURL and checks the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisStoreWithClient(client, DefaultTTL), nil
}

// NewRedisStoreWithClient creates a store from an existing Redis client.
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

// Publish replaces the mirrored snapshot of a session and refreshes its TTL.
func (s *RedisStore) Publish(ctx context.Context, sessionID string, snapshot []byte) error {
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if err := s.client.Set(ctx, key(sessionID), snapshot, s.ttl).Err(); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}
	return nil
}

// Fetch returns the mirrored snapshot or ports.ErrSnapshotNotFound.
func (s *RedisStore) Fetch(ctx context.Context, sessionID string) ([]byte, error) {
	data, err := s.client.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	return data, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping checks if Redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

var _ ports.SnapshotMirrorPort = (*RedisStore)(nil)
