package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisIdempotency struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisIdempotency(client *redis.Client, ttl time.Duration) *RedisIdempotency {
	return &RedisIdempotency{Client: client, TTL: ttl}
}

func (c *RedisIdempotency) chave(key string) string {
	return "pedido:idempotency:" + key
}

// Reserve returns false when the key was already reserved and has not expired.
func (c *RedisIdempotency) Reserve(ctx context.Context, key string) (bool, error) {
	return c.Client.SetNX(ctx, c.chave(key), "1", c.TTL).Result()
}

func (c *RedisIdempotency) Release(ctx context.Context, key string) error {
	return c.Client.Del(ctx, c.chave(key)).Err()
}
