package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"sdc/internal/domain/session"
)

const mirrorKeyPrefix = "session:record:"

// RedisMirror keeps session records in Redis keyed by token. Records carry
// no TTL: the store decides expiry when it reads, and the sweeper prunes
// what nothing reads anymore.
type RedisMirror struct {
	client *redis.Client
}

func NewRedisMirror(client *redis.Client) *RedisMirror {
	return &RedisMirror{client: client}
}

func (m *RedisMirror) Save(ctx context.Context, rec session.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}
	if err := m.client.Set(ctx, mirrorKeyPrefix+rec.Token, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session record: %w", err)
	}
	return nil
}

func (m *RedisMirror) Get(ctx context.Context, token string) (*session.Record, error) {
	data, err := m.client.Get(ctx, mirrorKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session record: %w", err)
	}

	var rec session.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session record: %w", err)
	}
	return &rec, nil
}

func (m *RedisMirror) Delete(ctx context.Context, token string) error {
	if err := m.client.Del(ctx, mirrorKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session record: %w", err)
	}
	return nil
}

func (m *RedisMirror) List(ctx context.Context) ([]session.Record, error) {
	var out []session.Record

	iter := m.client.Scan(ctx, 0, mirrorKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := m.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read session record: %w", err)
		}
		var rec session.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan session records: %w", err)
	}
	return out, nil
}
