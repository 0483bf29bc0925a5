package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores preferences as plain string keys with an optional TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// DialRedis connects and pings so a bad address fails at startup.
func DialRedis(ctx context.Context, addr string, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return NewRedis(client, ttl), nil
}

func redisKey(visitor, key string) string {
	return "folio:pref:" + visitor + ":" + key
}

func (s *Redis) Get(ctx context.Context, visitor, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, redisKey(visitor, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *Redis) Set(ctx context.Context, visitor, key, value string) error {
	if err := s.client.Set(ctx, redisKey(visitor, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *Redis) Close() error { return s.client.Close() }
