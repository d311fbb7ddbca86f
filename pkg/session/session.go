package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store tracks live admin tokens by jti so that a single token can be
// revoked without touching the user's other sessions.
type Store interface {
	Create(ctx context.Context, jti string, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func sessionKey(jti string) string {
	return fmt.Sprintf("session:%s", jti)
}

func (s *redisStore) Create(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *redisStore) Exists(ctx context.Context, jti string) (bool, error) {
	count, err := s.client.Exists(ctx, sessionKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return count > 0, nil
}

func (s *redisStore) Revoke(ctx context.Context, jti string) error {
	if err := s.client.Del(ctx, sessionKey(jti)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
