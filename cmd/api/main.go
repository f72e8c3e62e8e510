// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

// Command api is the entry point for the Marquee admin API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Initialize object storage and token signing.
//  7. Wire domain services and HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashercourt/marquee/internal/admin"
	"github.com/ashercourt/marquee/internal/api"
	"github.com/ashercourt/marquee/internal/core/chapter"
	"github.com/ashercourt/marquee/internal/core/pairing"
	"github.com/ashercourt/marquee/internal/core/project"
	"github.com/ashercourt/marquee/internal/core/recipe"
	"github.com/ashercourt/marquee/internal/core/shelf"
	"github.com/ashercourt/marquee/internal/core/sitecfg"
	"github.com/ashercourt/marquee/internal/core/upload"
	"github.com/ashercourt/marquee/internal/platform/config"
	"github.com/ashercourt/marquee/internal/platform/constants"
	"github.com/ashercourt/marquee/internal/platform/migration"
	pgstore "github.com/ashercourt/marquee/internal/platform/postgres"
	redisstore "github.com/ashercourt/marquee/internal/platform/redis"
	"github.com/ashercourt/marquee/internal/platform/sec"
	"github.com/ashercourt/marquee/internal/platform/storage"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "marquee"))
	slog.SetDefault(log)

	log.Info("[Marquee] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "marquee"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Infrastructure Services ────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	objectStore, err := storage.NewService(startupCtx, log, cfg.StorageBucket, cfg.StoragePublicBaseURL)
	must(log, err, "initialize object storage")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	sessionStore := admin.NewSessionStore(rdb)
	adminService := admin.NewService(cfg.AdminEmail, cfg.AdminPasswordHash, sessionStore, jwtSvc, log)

	pairingStore := pairing.NewStore(pool)
	pairingService := pairing.NewService(pairingStore, log)

	projectService := project.NewService(project.NewRepository(pool), pairingService, log)
	recipeService := recipe.NewService(recipe.NewRepository(pool), pairingService, log)

	// Tag inheritance spans both catalog items and recipes. The sources are
	// attached after construction so neither service imports the other.
	projectService.SetTagSources(projectService, recipeService)
	recipeService.SetTagSources(projectService, recipeService)

	chapterService := chapter.NewService(chapter.NewRepository(pool), log)
	shelfService := shelf.NewService(shelf.NewRepository(pool), projectService, log)
	siteService := sitecfg.NewService(pool, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Admin:     admin.NewHandler(adminService),
		Project:   project.NewHandler(projectService),
		Chapter:   chapter.NewHandler(chapterService),
		Recipe:    recipe.NewHandler(recipeService),
		Pairing:   pairing.NewHandler(pairingService),
		Shelf:     shelf.NewHandler(shelfService),
		Site:      sitecfg.NewHandler(siteService),
		Upload:    upload.NewHandler(objectStore),
	}

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, sessionStore, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
