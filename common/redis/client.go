package redis

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/omkarsindha/GSM-Alarm/common/config"
)

// Client go-redis client alias
type Client = redis.Client

// NewRedisClient builds a client from the shared Redis settings
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Ping checks the connection
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

// Close closes the connection
func Close(client *redis.Client) error {
	return client.Close()
}
