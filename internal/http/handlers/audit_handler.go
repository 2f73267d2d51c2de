package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sales-plan/backend/internal/http/dto"
	"github.com/sales-plan/backend/internal/repositories"
	"go.uber.org/zap"
)

type AuditHandler struct {
	auditRepo *repositories.AuditRepo
	log       *zap.Logger
}

func NewAuditHandler(auditRepo *repositories.AuditRepo, log *zap.Logger) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo, log: log}
}

// GetByEntity lists recent audit entries for one entity, newest first.
// Admins use this to answer "who changed this offer and when".
func (h *AuditHandler) GetByEntity(c *fiber.Ctx) error {
	entityType := c.Query("entityType")
	if entityType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "entityType is required"})
	}
	entityID := c.Query("entityId")

	logs, err := h.auditRepo.GetByEntity(c.Context(), entityType, entityID,
		c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		h.log.Error("audit query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: logs})
}
