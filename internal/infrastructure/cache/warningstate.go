package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWarningStateStore records which session tokens have had their expiry
// warning dismissed. Keys carry a TTL so a dismissal never outlives the
// session it belongs to.
type RedisWarningStateStore struct {
	client *redis.Client
	prefix string
}

// NewRedisWarningStateStore creates a new RedisWarningStateStore instance
// Parameters:
//   - client: Redis client instance
//   - prefix: Key prefix for namespacing (e.g., "session:warning:")
func NewRedisWarningStateStore(client *redis.Client, prefix string) *RedisWarningStateStore {
	return &RedisWarningStateStore{
		client: client,
		prefix: prefix,
	}
}

// Dismiss marks the warning for the given token as dismissed until ttl elapses.
func (s *RedisWarningStateStore) Dismiss(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := s.buildKey(token)
	if err := s.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store warning dismissal in redis: %w", err)
	}
	return nil
}

// IsDismissed reports whether the warning for the given token was dismissed.
func (s *RedisWarningStateStore) IsDismissed(ctx context.Context, token string) (bool, error) {
	key := s.buildKey(token)
	_, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read warning dismissal from redis: %w", err)
	}
	return true, nil
}

// Reset clears the dismissal for the given token, re-arming the warning.
func (s *RedisWarningStateStore) Reset(ctx context.Context, token string) error {
	key := s.buildKey(token)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear warning dismissal in redis: %w", err)
	}
	return nil
}

func (s *RedisWarningStateStore) buildKey(token string) string {
	return s.prefix + token
}
