// Command main is the entry point for the Code Book API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codebook/internal/bootstrap"
	"codebook/internal/config"
	"codebook/internal/middleware"
	"codebook/internal/observability"
	"codebook/internal/seed"
	"codebook/internal/server"
)

// @title Code Book API
// @version 1.0
// @description REST API for users, posts, comments and reactions.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	middleware.Logger = middleware.NewLogger(cfg.Env)

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "codebook-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSamplerRatio,
	})
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	opts := bootstrap.Options{}
	if cfg.SeedDemoData {
		opts.DemoData = &seed.Options{NumUsers: 10, NumPosts: 25, MaxComments: 4, MaxReactions: 6}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := bootstrap.InitRuntime(ctx, cfg, opts)
	cancel()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	srv, err := server.NewServerWithDeps(cfg, pool)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	app := srv.NewApp()

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("Tracer shutdown error: %v", err)
		}
	}()

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
	<-done
}
