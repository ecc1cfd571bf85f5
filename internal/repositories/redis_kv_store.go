package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCmdable is the subset of redis.Cmdable used by the Redis key-value store
type RedisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisKVStore implements KVStore on top of Redis strings.
// All keys are namespaced with prefix.
type redisKVStore struct {
	client RedisCmdable
	prefix string
}

// NewRedisKVStore creates a new Redis key-value store
func NewRedisKVStore(client RedisCmdable, prefix string) *redisKVStore {
	return &redisKVStore{
		client: client,
		prefix: prefix,
	}
}

func (s *redisKVStore) key(key string) string {
	return s.prefix + key
}

// Get retrieves a value by key
func (s *redisKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get redis key: %w", err)
	}
	return value, nil
}

// Set stores a value without expiration
func (s *redisKVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set redis key: %w", err)
	}
	return nil
}

// Delete removes a key
func (s *redisKVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete redis key: %w", err)
	}
	return nil
}
