package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sales-plan/backend/internal/auth"
	"github.com/sales-plan/backend/internal/config"
	"go.uber.org/zap"
)

const (
	CtxSessionID = "session_id"
	CtxIsAdmin   = "is_admin"
)

func AuthMiddleware(cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(CtxSessionID, claims.SessionID)
		c.Locals(CtxIsAdmin, claims.IsAdmin)

		return c.Next()
	}
}

func GetSessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(CtxSessionID).(string)
	return id
}

func IsAdmin(c *fiber.Ctx) bool {
	admin, _ := c.Locals(CtxIsAdmin).(bool)
	return admin
}

// AdminRequired gates mutation endpoints behind the admin claim. The
// services below it assume authorization already happened.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}
		return c.Next()
	}
}
