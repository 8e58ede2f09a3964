// Package session holds the Redis-backed store for admin-panel gate
// sessions. The gate flag used to live in client-local storage; keeping it
// server-side makes it verifiable and lets it expire.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const gateKeyPrefix = "admin_gate:"

type GateStore struct {
	client *redis.Client
}

// NewGateStore connects to Redis and verifies the connection.
func NewGateStore(redisURL, password string) (*GateStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &GateStore{client: rdb}, nil
}

// Set records an active gate session under the token with the given TTL.
func (s *GateStore) Set(ctx context.Context, token string, ttl time.Duration) error {
	if s == nil || s.client == nil {
		// No-op for testing/mock mode - return success
		return nil
	}
	return s.client.Set(ctx, gateKeyPrefix+token, "1", ttl).Err()
}

// Exists reports whether the token still has an active gate session.
func (s *GateStore) Exists(ctx context.Context, token string) (bool, error) {
	if s == nil || s.client == nil {
		return false, nil
	}
	n, err := s.client.Exists(ctx, gateKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes the gate session for the token.
func (s *GateStore) Delete(ctx context.Context, token string) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Del(ctx, gateKeyPrefix+token).Err()
}

// Close releases the underlying Redis connection.
func (s *GateStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
