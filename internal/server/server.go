// Package server contains the HTTP handlers and route tables for the Code Book API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "codebook/docs" // swagger docs
	"codebook/internal/config"
	"codebook/internal/database"
	"codebook/internal/middleware"
	"codebook/internal/models"
	"codebook/internal/observability"
	"codebook/internal/repository"
	"codebook/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	pool            *database.Pool
	app             *fiber.App
	registry        *prometheus.Registry
	promMiddleware  *fiberprometheus.FiberPrometheus
	userService     *service.UserService
	postService     *service.PostService
	commentService  *service.CommentService
	reactionService *service.ReactionService
}

// NewServerWithDeps creates a Server over an initialized pool. The schema is
// expected to be in place (see bootstrap.InitRuntime).
func NewServerWithDeps(cfg *config.Config, pool *database.Pool) (*Server, error) {
	registry := prometheus.NewRegistry()

	sqlDB, err := pool.DB().DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql.DB: %w", err)
	}
	if err := observability.RegisterDatabaseMetrics(registry, sqlDB, cfg.DBName); err != nil {
		return nil, fmt.Errorf("failed to register database metrics: %w", err)
	}

	return &Server{
		config:          cfg,
		pool:            pool,
		registry:        registry,
		promMiddleware:  middleware.InitMetrics(registry, "codebook-api"),
		userService:     service.NewUserService(repository.NewUserRepository(pool)),
		postService:     service.NewPostService(repository.NewPostRepository(pool)),
		commentService:  service.NewCommentService(repository.NewCommentRepository(pool)),
		reactionService: service.NewReactionService(repository.NewReactionRepository(pool)),
	}, nil
}

// NewApp builds the Fiber application with middleware and routes installed.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Code Book API",
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: ErrorHandler,
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Tracing runs before the context middleware so the trace ID reaches the logger.
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())

	app.Use(middleware.StructuredLogger())

	origins := "*"
	if s.config != nil && strings.TrimSpace(s.config.AllowedOrigins) != "" {
		origins = s.config.AllowedOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       86400,
	}))
}

// Welcome handles GET /
func (s *Server) Welcome(c *fiber.Ctx) error {
	return c.SendString("Welcome to Code Book!")
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests by acquiring and pinging a pooled connection.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if s.pool == nil {
		dbStatus = "unavailable"
	} else if err := s.pool.HealthCheck(ctx); err != nil {
		middleware.Logger.WarnContext(ctx, "readiness probe failed", slog.String("error", err.Error()))
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Code Book",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// ErrorHandler renders errors that escape a handler. Fiber errors keep their
// status; anything else goes through the application error mapping.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(models.ErrorResponse{
			Message: fe.Message,
			Code:    codeForStatus(fe.Code),
		})
	}

	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", slog.String("error", err.Error()))
	return models.RespondWithError(c, err)
}

func codeForStatus(status int) string {
	switch {
	case status == fiber.StatusNotFound:
		return models.CodeNotFound
	case status == fiber.StatusConflict:
		return models.CodeConflict
	case status < fiber.StatusInternalServerError:
		return models.CodeValidation
	default:
		return models.CodeInternal
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	if s.pool != nil {
		if err := s.pool.Close(); err != nil {
			middleware.Logger.Error("error closing database pool", slog.String("error", err.Error()))
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
