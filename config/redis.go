package config

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from REDIS_* env vars.
func NewRedisClient() *redis.Client {
	db, _ := strconv.Atoi(envOrDefault("REDIS_DB", "0"))

	return redis.NewClient(&redis.Options{
		Addr:     envOrDefault("REDIS_ADDR", "127.0.0.1:6379"),
		Password: envOrDefault("REDIS_PASSWORD", ""),
		DB:       db,
	})
}

// PingRedis verifies the connection.
func PingRedis(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}
