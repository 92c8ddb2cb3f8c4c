// Package bootstrap wires the runtime dependencies (database, cache, demo
// data) before the HTTP layer starts.
package bootstrap

import (
	"fmt"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemoData populates an empty development database with demo
	// content. Ignored outside the development environment.
	SeedDemoData bool
}

// InitRuntime connects to the database and Redis and optionally seeds demo
// data. The Redis client may be nil when the cache is unreachable; callers
// must treat it as optional.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData && strings.EqualFold(cfg.Env, "development") {
		if err := seed.Run(db, seed.Options{}); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}
