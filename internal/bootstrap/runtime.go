// Package bootstrap prepares the database runtime shared by the commands.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"codebook/internal/config"
	"codebook/internal/database"
	"codebook/internal/middleware"
	"codebook/internal/seed"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// Dialector overrides the Postgres dialector built from the config.
	Dialector gorm.Dialector
	// SkipSchema leaves the schema untouched.
	SkipSchema bool
	// DemoData seeds a small data set when the users table is empty.
	DemoData *seed.Options
}

// InitRuntime opens the pool, fails fast when no connection can be acquired,
// and applies the schema according to DB_SCHEMA_MODE.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*database.Pool, error) {
	dialector := opts.Dialector
	if dialector == nil {
		dialector = postgres.Open(database.DSN(cfg))
	}

	db, err := database.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	pool := database.NewPool(db)

	if err := pool.HealthCheck(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	if !opts.SkipSchema {
		if err := database.ApplySchema(ctx, db, cfg); err != nil {
			_ = pool.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	if opts.DemoData != nil {
		if err := seedIfEmpty(ctx, pool, *opts.DemoData); err != nil {
			_ = pool.Close()
			return nil, err
		}
	}

	return pool, nil
}

func seedIfEmpty(ctx context.Context, pool *database.Pool, opts seed.Options) error {
	var users int64
	err := pool.WithConn(ctx, func(tx *gorm.DB) error {
		return tx.Table("users").Count(&users).Error
	})
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if users > 0 {
		middleware.Logger.InfoContext(ctx, "Skipping demo data, database is not empty", slog.Int64("users", users))
		return nil
	}

	if _, err := seed.NewSeeder(pool, opts).Run(ctx); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	return nil
}
