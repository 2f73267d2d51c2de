package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/sales-plan/backend/internal/config"
	"github.com/sales-plan/backend/internal/http/handlers"
	"github.com/sales-plan/backend/internal/middleware"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	planHandler *handlers.PlanHandler,
	offerHandler *handlers.OfferHandler,
	collateralHandler *handlers.CollateralHandler,
	timelineHandler *handlers.TimelineHandler,
	exportHandler *handlers.ExportHandler,
	auditHandler *handlers.AuditHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/login", authHandler.Login)

	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/channels", metaHandler.GetChannels)
	api.Get("/meta/collateral-types", metaHandler.GetCollateralTypes)
	api.Get("/meta/offer-types", metaHandler.GetOfferTypes)

	// Reads (public: anyone can browse the plan)
	api.Get("/plan", planHandler.GetPlan)
	api.Get("/months/:id", planHandler.GetMonth)
	api.Get("/export/offers.csv", exportHandler.OffersCSV)
	api.Get("/export/offers.json", exportHandler.OffersJSON)

	// Mutations require the admin token
	admin := api.Group("", middleware.AuthMiddleware(cfg, log), middleware.AdminRequired())

	admin.Put("/plan", planHandler.ReplacePlan)
	admin.Delete("/plan", planHandler.ClearPlan)

	admin.Put("/months/:id", planHandler.UpdateMonth)

	admin.Post("/months/:id/offers", offerHandler.CreateOffer)
	admin.Put("/months/:id/offers/:offerId", offerHandler.UpdateOffer)
	admin.Delete("/months/:id/offers/:offerId", offerHandler.DeleteOffer)

	admin.Post("/months/:id/collateral", collateralHandler.AddCollateral)
	admin.Put("/months/:id/collateral", collateralHandler.SetCollateral)
	admin.Put("/months/:id/collateral/:recordId", collateralHandler.UpdateCollateral)
	admin.Delete("/months/:id/collateral", collateralHandler.ClearCollateral)
	admin.Delete("/months/:id/collateral/:recordId", collateralHandler.DeleteCollateral)

	admin.Post("/months/:id/timeline", timelineHandler.AddTimeline)
	admin.Put("/months/:id/timeline", timelineHandler.SetTimeline)
	admin.Put("/months/:id/timeline/:recordId", timelineHandler.UpdateTimeline)
	admin.Delete("/months/:id/timeline", timelineHandler.ClearTimeline)
	admin.Delete("/months/:id/timeline/:recordId", timelineHandler.DeleteTimeline)

	admin.Post("/export/email", exportHandler.EmailDigest)

	admin.Get("/audit", auditHandler.GetByEntity)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
