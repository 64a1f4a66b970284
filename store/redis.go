package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisRegion is a session-scoped Region backed by Redis. Every key carries a
// sliding TTL: reads and writes push expiry out by ttl, and an idle session
// simply evaporates.
type RedisRegion struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisRegion wraps an existing client. A zero ttl stores keys without expiry.
func NewRedisRegion(client *redis.Client, prefix string, ttl time.Duration) *RedisRegion {
	return &RedisRegion{client: client, prefix: prefix, ttl: ttl}
}

// DialRedis parses redisURL, verifies the connection and returns a region.
func DialRedis(ctx context.Context, redisURL, prefix string, ttl time.Duration) (*RedisRegion, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisRegion(client, prefix, ttl), nil
}

func (r *RedisRegion) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

func (r *RedisRegion) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}

	if r.ttl > 0 {
		// Refresh failures only shorten the session; the value is still valid.
		_ = r.client.Expire(ctx, r.key(key), r.ttl).Err()
	}
	return value, true, nil
}

func (r *RedisRegion) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (r *RedisRegion) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("del %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (r *RedisRegion) Close() error {
	return r.client.Close()
}
