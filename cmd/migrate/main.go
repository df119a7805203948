// Command migrate runs schema operations for the Code Book database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"codebook/internal/bootstrap"
	"codebook/internal/config"
	"codebook/internal/database"

	"gorm.io/gorm"
)

type command func(ctx context.Context, db *gorm.DB, cfg *config.Config, args []string) error

var commands = map[string]command{
	"up":     up,
	"auto":   auto,
	"status": status,
	"down":   down,
}

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "Deadline for the whole operation")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: migrate [-timeout 2m] <up|auto|status|down> [version]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cmd, ok := commands[strings.ToLower(strings.TrimSpace(flag.Arg(0)))]
	if !ok {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{SkipSchema: true})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer func() { _ = pool.Close() }()

	if err := cmd(ctx, pool.DB(), cfg, flag.Args()[1:]); err != nil {
		log.Printf("%s failed: %v", flag.Arg(0), err)
		cancel()
		_ = pool.Close()
		os.Exit(1)
	}
}

func up(ctx context.Context, db *gorm.DB, _ *config.Config, _ []string) error {
	if err := database.RunMigrations(ctx, db); err != nil {
		return err
	}
	log.Println("sql migrations applied")
	return nil
}

func auto(ctx context.Context, db *gorm.DB, cfg *config.Config, _ []string) error {
	cfg.DBSchemaMode = database.SchemaModeAuto
	if err := database.ApplySchema(ctx, db, cfg); err != nil {
		return err
	}
	log.Println("automigrations applied")
	return nil
}

func status(ctx context.Context, db *gorm.DB, cfg *config.Config, _ []string) error {
	s, err := database.GetSchemaStatus(ctx, db, cfg)
	if err != nil {
		return err
	}
	log.Printf("mode=%s env=%s run_sql=%t run_auto=%t applied=%v pending=%d",
		s.Mode, s.Environment, s.RunSQL, s.RunAutoMigrate, s.AppliedVersions, len(s.PendingMigrations))
	for _, m := range s.PendingMigrations {
		log.Printf("pending: %s", m.String())
	}
	return nil
}

func down(ctx context.Context, db *gorm.DB, _ *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("missing version: migrate down <version>")
	}
	version, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", args[0], err)
	}
	if err := database.RollbackMigration(ctx, db, version); err != nil {
		return err
	}
	log.Printf("rolled back migration %d", version)
	return nil
}
