package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sales-plan/backend/internal/http/dto"
	"github.com/sales-plan/backend/internal/middleware"
	"github.com/sales-plan/backend/internal/models"
	"github.com/sales-plan/backend/internal/services"
	"go.uber.org/zap"
)

type CollateralHandler struct {
	planService *services.PlanService
	log         *zap.Logger
}

func NewCollateralHandler(planService *services.PlanService, log *zap.Logger) *CollateralHandler {
	return &CollateralHandler{planService: planService, log: log}
}

func (h *CollateralHandler) AddCollateral(c *fiber.Ctx) error {
	var req dto.CollateralRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}
	if req.Offer == "" || req.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "offer and type are required"})
	}

	rec, err := h.planService.AddCollateral(c.Context(), c.Params("id"), req.ToModel(), middleware.GetSessionID(c))
	if err != nil {
		return monthError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: rec})
}

func (h *CollateralHandler) UpdateCollateral(c *fiber.Ctx) error {
	var patch models.CollateralPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	rec, err := h.planService.UpdateCollateral(c.Context(), c.Params("id"), c.Params("recordId"), patch, middleware.GetSessionID(c))
	if err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: rec})
}

func (h *CollateralHandler) DeleteCollateral(c *fiber.Ctx) error {
	if err := h.planService.DeleteCollateral(c.Context(), c.Params("id"), c.Params("recordId"), middleware.GetSessionID(c)); err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *CollateralHandler) ClearCollateral(c *fiber.Ctx) error {
	if err := h.planService.ClearCollateral(c.Context(), c.Params("id"), middleware.GetSessionID(c)); err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *CollateralHandler) SetCollateral(c *fiber.Ctx) error {
	var reqs []dto.CollateralRequest
	if err := c.BodyParser(&reqs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	records := make([]models.MarketingCollateral, 0, len(reqs))
	for _, r := range reqs {
		records = append(records, r.ToModel())
	}
	if err := h.planService.SetCollateral(c.Context(), c.Params("id"), records, middleware.GetSessionID(c)); err != nil {
		return monthError(c, err)
	}

	m, err := h.planService.Month(c.Context(), c.Params("id"))
	if err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: m.MarketingCollateral.Records()})
}
