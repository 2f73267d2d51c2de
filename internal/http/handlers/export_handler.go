package handlers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sales-plan/backend/internal/export"
	"github.com/sales-plan/backend/internal/http/dto"
	"github.com/sales-plan/backend/internal/models"
	"github.com/sales-plan/backend/internal/services"
	"go.uber.org/zap"
)

type ExportHandler struct {
	planService *services.PlanService
	mailer      *services.MailerClient
	log         *zap.Logger
}

func NewExportHandler(planService *services.PlanService, mailer *services.MailerClient, log *zap.Logger) *ExportHandler {
	return &ExportHandler{planService: planService, mailer: mailer, log: log}
}

func (h *ExportHandler) OffersCSV(c *fiber.Ctx) error {
	months, year, err := h.scoped(c, c.Query("scope"), c.Query("month"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	var buf bytes.Buffer
	if err := export.WriteOffersCSV(&buf, months); err != nil {
		h.log.Error("csv export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="offers-%d.csv"`, year))
	return c.Send(buf.Bytes())
}

func (h *ExportHandler) OffersJSON(c *fiber.Ctx) error {
	months, year, err := h.scoped(c, c.Query("scope"), c.Query("month"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	blob, err := export.OffersJSON(months)
	if err != nil {
		h.log.Error("json export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="offers-%d.json"`, year))
	return c.Send(blob)
}

// EmailDigest builds the HTML digest and hands it to the mailer. A mailer
// failure is reported but still returns the rendered HTML so the caller can
// copy it out by hand.
func (h *ExportHandler) EmailDigest(c *fiber.Ctx) error {
	var req dto.EmailExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}
	if req.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "to is required"})
	}

	months, year, err := h.scoped(c, req.Scope, req.Month)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	html, err := export.BuildEmailHTML(months, year)
	if err != nil {
		h.log.Error("email render failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("Sales Plan %d", year)
	}

	sent := true
	if err := h.mailer.Send(c.Context(), services.SendEmailRequest{To: req.To, Subject: subject, HTML: html}); err != nil {
		h.log.Error("email send failed", zap.Error(err))
		sent = false
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.EmailExportResponse{Sent: sent, HTML: html}})
}

func (h *ExportHandler) scoped(c *fiber.Ctx, scope, monthID string) ([]models.Month, int, error) {
	plan, err := h.planService.Snapshot(c.Context())
	if err != nil {
		return nil, 0, err
	}
	months, err := export.ScopeMonths(plan, scope, monthID)
	if err != nil {
		return nil, 0, err
	}
	return months, plan.Year, nil
}
