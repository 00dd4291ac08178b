// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"barbershop/config"

	"github.com/go-redis/redis/v8"
)

// StateClient is the Redis client holding per-client cart, draft and preferences.
var StateClient *redis.Client

// InitStateCache connects the state client (REDIS_STATE_DB) and pings it.
func InitStateCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis (State): %w", err)
	}
	StateClient = client
	return nil
}

// GetStateClient returns the state client, or nil when it was never initialised.
func GetStateClient() *redis.Client {
	return StateClient
}
