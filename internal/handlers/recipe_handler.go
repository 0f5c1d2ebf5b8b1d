package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/services"
)

type RecipeHandler struct {
	recipeService *services.RecipeService
}

func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func recipeListQuery(c *fiber.Ctx) dto.RecipeListQuery {
	q := dto.RecipeListQuery{
		Page:             c.QueryInt("page"),
		PageSize:         c.QueryInt("pageSize"),
		SortBy:           dto.RecipeSortBy(c.Query("sortBy")),
		SortDir:          dto.SortDir(c.Query("sortDir")),
		CategoryID:       c.Query("categoryId"),
		TextSearch:       c.Query("q"),
		IngredientSearch: c.Query("ingredient"),
	}
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				q.Tags = append(q.Tags, tag)
			}
		}
	}
	if raw := c.Query("minRating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MinRating = v
		}
	}
	return q
}

func (h *RecipeHandler) List(c *fiber.Ctx) error {
	result, err := h.recipeService.List(c.Context(), middleware.GetCredentials(c), recipeListQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *RecipeHandler) ListMine(c *fiber.Ctx) error {
	result, err := h.recipeService.ListMine(c.Context(), middleware.GetCredentials(c), recipeListQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	detail, err := h.recipeService.GetByID(c.Context(), middleware.GetCredentials(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var req dto.RecipeUpsert
	if err := parseBody(c, &req); err != nil {
		return err
	}

	detail, err := h.recipeService.Create(c.Context(), middleware.GetCredentials(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(detail)
}

func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	var req dto.RecipeUpsert
	if err := parseBody(c, &req); err != nil {
		return err
	}

	detail, err := h.recipeService.Update(c.Context(), middleware.GetCredentials(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	if err := h.recipeService.Delete(c.Context(), middleware.GetCredentials(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
