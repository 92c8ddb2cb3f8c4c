package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// FailPolicy defines the behavior when the rate limit store (Redis) is unavailable.
type FailPolicy int

const (
	// FailOpen allows the request to proceed if Redis is unavailable.
	FailOpen FailPolicy = iota
	// FailClosed blocks the request (503) if Redis is unavailable.
	FailClosed
)

// CheckRateLimit reports whether another request against resource/id fits in
// the fixed window. Limiting is disabled when the configured environment is
// "test" or "development" so local workflows are not throttled.
func CheckRateLimit(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, error) {
	if cfg == nil {
		return true, nil
	}
	switch cfg.Env {
	case "test", "development", "":
		return true, nil
	}

	if rdb == nil {
		return false, fmt.Errorf("redis client is nil")
	}

	key := "rl:" + resource + ":" + id

	cnt, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if cnt == 1 {
		rdb.Expire(ctx, key, window)
	}
	return cnt <= int64(limit), nil
}

// RateLimit returns a Fiber middleware enforcing limit requests per window,
// keyed by authenticated user when available and remote IP otherwise. The
// optional name overrides the request path as the counter's resource; the
// middleware fails open.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, name ...string) fiber.Handler {
	return RateLimitWithPolicy(rdb, limit, window, FailOpen, name...)
}

// RateLimitWithPolicy is RateLimit with an explicit store-failure policy.
func RateLimitWithPolicy(rdb *redis.Client, limit int, window time.Duration, policy FailPolicy, name ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resource := c.Path()
		if len(name) > 0 {
			resource = name[0]
		}

		allowed, err := CheckRateLimit(context.Background(), rdb, resource, limiterID(c), limit, window)
		if err != nil {
			if policy == FailClosed {
				Logger.Warn("rate limit store unavailable, failing closed",
					slog.String("resource", resource), slog.String("error", err.Error()))
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"success": false,
					"message": "rate limit unavailable",
				})
			}
			return c.Next()
		}

		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}

func limiterID(c *fiber.Ctx) string {
	if uid, ok := c.Locals("userID").(uint); ok {
		return fmt.Sprintf("user:%d", uid)
	}
	return "ip:" + c.IP()
}
