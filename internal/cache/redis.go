// Package cache provides Redis caching utilities for the application.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"inkwell/internal/middleware"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// metricsHook counts command failures in the RedisErrors counter. Cache
// misses (redis.Nil) are not failures.
type metricsHook struct{}

func (metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		countRedisError(cmd.Name(), err)
		return err
	}
}

func (metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		countRedisError("pipeline", err)
		return err
	}
}

func countRedisError(op string, err error) {
	if err != nil && !errors.Is(err, redis.Nil) {
		middleware.RedisErrors.WithLabelValues(op).Inc()
	}
}

// InitRedis initializes the Redis client from an address or redis:// URL.
// The application runs without a cache when the address is invalid or the
// server is unreachable; callers must tolerate a nil client.
func InitRedis(addr string) {
	opts := &redis.Options{Addr: addr}
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			middleware.Logger.Warn("invalid REDIS_URL, continuing without cache",
				slog.String("url", addr), slog.String("error", err.Error()))
			client = nil
			return
		}
		opts = parsed
	}

	c := redis.NewClient(opts)
	c.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("redis unreachable, continuing without cache",
			slog.String("error", err.Error()))
		client = nil
		return
	}

	middleware.Logger.Info("Redis connected successfully")
	client = c
}

// GetClient returns the current Redis client instance, nil when the cache
// is unavailable.
func GetClient() *redis.Client {
	return client
}

// Aside implements the cache-aside pattern: on hit, dest is filled from
// Redis; on miss, load runs and the loaded value is written back with the
// given TTL. When Redis is unavailable, load runs directly.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, load func() error) error {
	if client == nil {
		return load()
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err == nil {
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			return nil
		}
		// Corrupt payload, drop it and fall through to the loader.
		client.Del(ctx, key)
	}

	if err := load(); err != nil {
		return err
	}

	if payload, err := json.Marshal(dest); err == nil {
		client.Set(ctx, key, payload, ttl)
	}
	return nil
}
