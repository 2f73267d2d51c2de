package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sales-plan/backend/internal/config"
	"github.com/sales-plan/backend/internal/db"
	"github.com/sales-plan/backend/internal/events"
	"github.com/sales-plan/backend/internal/repositories"
	"github.com/sales-plan/backend/internal/services"
	"go.uber.org/zap"
)

// The worker periodically re-seeds uninitialized record sets and heals
// duplicate timeline rows, covering drift from direct DB edits or saves the
// API lost to persistence failures.
func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	planRepo := repositories.NewPlanRepo(pool)
	mirrorRepo := repositories.NewMirrorRepo(rdb)
	auditRepo := repositories.NewAuditRepo(pool)
	publisher := events.NewRedisPublisher(rdb, log)

	planService := services.NewPlanService(planRepo, mirrorRepo, auditRepo, publisher, cfg, log)

	log.Info("worker started", zap.Duration("sweep_interval", cfg.SweepInterval))

	sweepTicker := time.NewTicker(cfg.SweepInterval)
	defer sweepTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweepTicker.C:
			runSweep(ctx, planService, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		}
	}
}

func runSweep(ctx context.Context, planService *services.PlanService, log *zap.Logger) {
	// Reload on every pass: the API process owns the live document and this
	// worker must not act on a stale copy.
	if err := planService.Load(ctx); err != nil {
		log.Error("sweep load failed", zap.Error(err))
		return
	}
	if planService.Sweep(ctx) {
		log.Info("sweep applied changes")
	}
}
