package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sales-plan/backend/internal/http/dto"
	"github.com/sales-plan/backend/internal/middleware"
	"github.com/sales-plan/backend/internal/services"
	"go.uber.org/zap"
)

type OfferHandler struct {
	planService *services.PlanService
	log         *zap.Logger
}

func NewOfferHandler(planService *services.PlanService, log *zap.Logger) *OfferHandler {
	return &OfferHandler{planService: planService, log: log}
}

func (h *OfferHandler) CreateOffer(c *fiber.Ctx) error {
	var req dto.OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "title is required"})
	}

	offer, err := h.planService.CreateOffer(c.Context(), c.Params("id"), req.ToModel(), middleware.GetSessionID(c))
	if err != nil {
		return monthError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: offer})
}

func (h *OfferHandler) UpdateOffer(c *fiber.Ctx) error {
	var req dto.OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	offer, err := h.planService.UpdateOffer(c.Context(), c.Params("id"), c.Params("offerId"), req.ToModel(), middleware.GetSessionID(c))
	if err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: offer})
}

func (h *OfferHandler) DeleteOffer(c *fiber.Ctx) error {
	if err := h.planService.DeleteOffer(c.Context(), c.Params("id"), c.Params("offerId"), middleware.GetSessionID(c)); err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}
