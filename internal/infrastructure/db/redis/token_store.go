package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultTokenKey is the key the bearer token is kept under.
const DefaultTokenKey = "auth_token"

// TokenStore persists the console's bearer token in Redis so a session
// survives console restarts. The token has no TTL; the API decides expiry.
type TokenStore struct {
	client *redis.Client
	key    string
}

func NewTokenStore(client *redis.Client, key string) *TokenStore {
	if key == "" {
		key = DefaultTokenKey
	}
	return &TokenStore{client: client, key: key}
}

func (s *TokenStore) Token(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	return token, nil
}

func (s *TokenStore) SetToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("set token: %w", err)
	}
	return nil
}

func (s *TokenStore) RemoveToken(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// Ping reports Redis reachability for readiness checks.
func (s *TokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
