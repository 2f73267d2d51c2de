package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/sales-plan/backend/internal/config"
	"github.com/sales-plan/backend/internal/db"
	"github.com/sales-plan/backend/internal/events"
	apphttp "github.com/sales-plan/backend/internal/http"
	"github.com/sales-plan/backend/internal/http/handlers"
	"github.com/sales-plan/backend/internal/repositories"
	"github.com/sales-plan/backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	planRepo := repositories.NewPlanRepo(pool)
	mirrorRepo := repositories.NewMirrorRepo(rdb)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	planService := services.NewPlanService(planRepo, mirrorRepo, auditRepo, publisher, cfg, log)
	if err := planService.Load(ctx); err != nil {
		log.Fatal("failed to load plan", zap.Error(err))
	}
	mailer := services.NewMailerClient(cfg.MailerInternalURL, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg, log)
	planHandler := handlers.NewPlanHandler(planService, log)
	offerHandler := handlers.NewOfferHandler(planService, log)
	collateralHandler := handlers.NewCollateralHandler(planService, log)
	timelineHandler := handlers.NewTimelineHandler(planService, log)
	exportHandler := handlers.NewExportHandler(planService, mailer, log)
	auditHandler := handlers.NewAuditHandler(auditRepo, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, planHandler, offerHandler, collateralHandler, timelineHandler, exportHandler, auditHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
