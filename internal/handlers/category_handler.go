package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/services"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryUpsert
	if err := parseBody(c, &req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(c.Context(), middleware.GetCredentials(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var req dto.CategoryUpsert
	if err := parseBody(c, &req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(c.Context(), middleware.GetCredentials(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.categoryService.Delete(c.Context(), middleware.GetCredentials(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
