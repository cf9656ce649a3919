// Package bootstrap wires the process-level runtime: database, schema
// management and Redis. It is shared by the server and the CLI tools so
// they initialize identically.
package bootstrap

import (
	"context"
	"fmt"

	"devconnect/internal/cache"
	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// ApplySchema runs schema management (migrations and/or automigrate,
	// per DB_SCHEMA_MODE) after connecting.
	ApplySchema bool
	// SeedDemoData populates the database with fake users and posts.
	// Development convenience only.
	SeedDemoData bool
}

// InitRuntime connects to the database and Redis and optionally applies
// the schema and demo seed data. The Redis client may be nil if the
// server is unreachable; callers treat that as cache-off.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if opts.ApplySchema {
		if err := database.ApplySchema(ctx, db, cfg); err != nil {
			return nil, nil, fmt.Errorf("schema management failed: %w", err)
		}
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		if err := seed.Run(db, seed.DefaultOptions()); err != nil {
			return nil, nil, fmt.Errorf("demo data seeding failed: %w", err)
		}
	}

	return db, r, nil
}
