// Package bootstrap wires configuration, storage and caching into a ready
// runtime for commands.
package bootstrap

import (
	"fmt"
	"strings"

	"skillswap/internal/cache"
	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedCatalog installs the built-in skill catalog. Safe to leave on; the
	// seeder is idempotent.
	SeedCatalog bool
}

// InitRuntime connects to DB and Redis and optionally runs built-in seeding.
// The Redis client may be nil if the server is unreachable; callers degrade.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedCatalog {
		if err := seed.Skills(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed skill catalog: %w", err)
		}
	}

	if cfg.SeedDemoData && strings.EqualFold(cfg.Env, "development") {
		if err := seed.DemoUsers(db, seed.DemoOptions{}); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}
