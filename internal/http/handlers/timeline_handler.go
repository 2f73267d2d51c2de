package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sales-plan/backend/internal/http/dto"
	"github.com/sales-plan/backend/internal/middleware"
	"github.com/sales-plan/backend/internal/models"
	"github.com/sales-plan/backend/internal/services"
	"go.uber.org/zap"
)

type TimelineHandler struct {
	planService *services.PlanService
	log         *zap.Logger
}

func NewTimelineHandler(planService *services.PlanService, log *zap.Logger) *TimelineHandler {
	return &TimelineHandler{planService: planService, log: log}
}

func (h *TimelineHandler) AddTimeline(c *fiber.Ctx) error {
	var req dto.TimelineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}
	if req.Offer == "" || req.SendDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "offer and sendDate are required"})
	}

	rec, err := h.planService.AddTimeline(c.Context(), c.Params("id"), req.ToModel(), middleware.GetSessionID(c))
	if err != nil {
		return monthError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: rec})
}

func (h *TimelineHandler) UpdateTimeline(c *fiber.Ctx) error {
	var patch models.TimelinePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	rec, err := h.planService.UpdateTimeline(c.Context(), c.Params("id"), c.Params("recordId"), patch, middleware.GetSessionID(c))
	if err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: rec})
}

func (h *TimelineHandler) DeleteTimeline(c *fiber.Ctx) error {
	if err := h.planService.DeleteTimeline(c.Context(), c.Params("id"), c.Params("recordId"), middleware.GetSessionID(c)); err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *TimelineHandler) ClearTimeline(c *fiber.Ctx) error {
	if err := h.planService.ClearTimeline(c.Context(), c.Params("id"), middleware.GetSessionID(c)); err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *TimelineHandler) SetTimeline(c *fiber.Ctx) error {
	var reqs []dto.TimelineRequest
	if err := c.BodyParser(&reqs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	records := make([]models.CRMTimeline, 0, len(reqs))
	for _, r := range reqs {
		records = append(records, r.ToModel())
	}
	if err := h.planService.SetTimeline(c.Context(), c.Params("id"), records, middleware.GetSessionID(c)); err != nil {
		return monthError(c, err)
	}

	m, err := h.planService.Month(c.Context(), c.Params("id"))
	if err != nil {
		return monthError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: m.CRMTimeline.Records()})
}
