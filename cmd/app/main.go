package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/starquiz/StarQuiz_Go/internal/audit"
	"github.com/starquiz/StarQuiz_Go/internal/badge"
	"github.com/starquiz/StarQuiz_Go/internal/bootstrap"
	"github.com/starquiz/StarQuiz_Go/internal/concurrency"
	"github.com/starquiz/StarQuiz_Go/internal/config"
	"github.com/starquiz/StarQuiz_Go/internal/database"
	"github.com/starquiz/StarQuiz_Go/internal/reward"
	"github.com/starquiz/StarQuiz_Go/internal/server"
	"github.com/starquiz/StarQuiz_Go/internal/star"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	ctx := context.Background()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.EnsureSchema(ctx, dbPool); err != nil {
		slog.Error("Failed to apply database schema", "error", err)
		os.Exit(1)
	}

	eventBus := bootstrap.InitializeEventSystem()
	repos := bootstrap.InitializeRepositories(dbPool)
	locks := concurrency.NewLockManager()

	badgeService := badge.NewService(repos.Badge, repos.Reward, eventBus, locks)
	rewardService := reward.NewService(repos.Reward, repos.Badge, eventBus, locks)
	starService := star.NewService(repos.Star, eventBus, locks)
	auditService := audit.NewService(repos.Audit)

	if err := bootstrap.RegisterEventHandlers(eventBus, auditService); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.AdminKey, cfg.TrustedProxies, dbPool,
		badgeService, starService, rewardService, auditService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server stopped unexpectedly", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
