package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/services"
)

type RatingHandler struct {
	ratingService *services.RatingService
}

func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

func (h *RatingHandler) ListByRecipe(c *fiber.Ctx) error {
	ratings, err := h.ratingService.ListByRecipe(c.Context(), middleware.GetCredentials(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(ratings)
}

func (h *RatingHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.ratingService.Summary(c.Context(), middleware.GetCredentials(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

func (h *RatingHandler) Rate(c *fiber.Ctx) error {
	var req dto.RateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	summary, err := h.ratingService.Rate(c.Context(), middleware.GetCredentials(c), c.Params("id"), req.Value)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
