package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps session state in Redis so several instances
// can share it. Each key expires on its own TTL; a hit does not renew
// the clock.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Put(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, payload, s.TTL).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, key string, v any) error {
	payload, err := s.Client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, v)
}

func (s *RedisSessionStore) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}
