package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/services"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListByRecipe(c *fiber.Ctx) error {
	comments, err := h.commentService.ListByRecipe(c.Context(), middleware.GetCredentials(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var req dto.CommentCreate
	if err := parseBody(c, &req); err != nil {
		return err
	}

	comment, err := h.commentService.Create(c.Context(), middleware.GetCredentials(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) Remove(c *fiber.Ctx) error {
	if err := h.commentService.Remove(c.Context(), middleware.GetCredentials(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
