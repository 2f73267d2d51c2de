package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sales-plan/backend/internal/http/dto"
	"github.com/sales-plan/backend/internal/middleware"
	"github.com/sales-plan/backend/internal/models"
	"github.com/sales-plan/backend/internal/services"
	"go.uber.org/zap"
)

type PlanHandler struct {
	planService *services.PlanService
	log         *zap.Logger
}

func NewPlanHandler(planService *services.PlanService, log *zap.Logger) *PlanHandler {
	return &PlanHandler{planService: planService, log: log}
}

func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	plan, err := h.planService.Snapshot(c.Context())
	if err != nil {
		h.log.Error("plan snapshot failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: plan})
}

func (h *PlanHandler) ReplacePlan(c *fiber.Ctx) error {
	var plan models.Plan
	if err := c.BodyParser(&plan); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid plan document"})
	}
	if len(plan.Months) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "plan has no months"})
	}

	if err := h.planService.ReplacePlan(c.Context(), &plan, middleware.GetSessionID(c)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return h.GetPlan(c)
}

func (h *PlanHandler) ClearPlan(c *fiber.Ctx) error {
	if err := h.planService.ClearPlan(c.Context(), middleware.GetSessionID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *PlanHandler) GetMonth(c *fiber.Ctx) error {
	m, err := h.planService.Month(c.Context(), c.Params("id"))
	if err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: m})
}

func (h *PlanHandler) UpdateMonth(c *fiber.Ctx) error {
	var req dto.UpdateMonthRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	m, err := h.planService.UpdateMonth(c.Context(), c.Params("id"), req.Name, req.Theme, middleware.GetSessionID(c))
	if err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: m})
}

// monthError maps service errors to HTTP statuses.
func monthError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMonthNotFound),
		errors.Is(err, services.ErrOfferNotFound),
		errors.Is(err, services.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
}
