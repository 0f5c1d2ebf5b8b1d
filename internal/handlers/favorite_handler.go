package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/services"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) ListMine(c *fiber.Ctx) error {
	q := dto.RecipeListQuery{
		Page:     c.QueryInt("page"),
		PageSize: c.QueryInt("pageSize"),
	}
	result, err := h.favoriteService.ListMine(c.Context(), middleware.GetCredentials(c), q)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *FavoriteHandler) Get(c *fiber.Ctx) error {
	fav, err := h.favoriteService.IsFavorite(c.Context(), middleware.GetCredentials(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"recipeId": c.Params("id"), "isFavorite": fav})
}

func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	fav, err := h.favoriteService.Toggle(c.Context(), middleware.GetCredentials(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"recipeId": c.Params("id"), "isFavorite": fav})
}
