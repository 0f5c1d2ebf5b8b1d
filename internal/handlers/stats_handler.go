package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) PopularCategories(c *fiber.Ctx) error {
	stats, err := h.statsService.PopularCategories(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *StatsHandler) RatingPerCategory(c *fiber.Ctx) error {
	stats, err := h.statsService.RatingPerCategory(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
