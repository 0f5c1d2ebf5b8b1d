package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var req dto.ReportCreate
	if err := parseBody(c, &req); err != nil {
		return err
	}

	report, err := h.reportService.Create(c.Context(), middleware.GetCredentials(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *ReportHandler) Queue(c *fiber.Ctx) error {
	q := dto.ModerationQueueQuery{
		Page:     c.QueryInt("page"),
		PageSize: c.QueryInt("pageSize"),
		Type:     c.Query("type"),
		Status:   models.ReportStatus(c.Query("status")),
	}
	result, err := h.reportService.ModerationQueue(c.Context(), middleware.GetCredentials(c), q)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *ReportHandler) Resolve(c *fiber.Ctx) error {
	report, err := h.reportService.Resolve(c.Context(), middleware.GetCredentials(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(report)
}

func (h *ReportHandler) Remove(c *fiber.Ctx) error {
	report, err := h.reportService.Remove(c.Context(), middleware.GetCredentials(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(report)
}
