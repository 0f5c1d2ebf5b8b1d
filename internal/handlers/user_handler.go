package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	q := dto.UserListQuery{
		Page:     c.QueryInt("page"),
		PageSize: c.QueryInt("pageSize"),
		Search:   c.Query("search"),
		Role:     models.Role(c.Query("role")),
		SortBy:   dto.UserSortBy(c.Query("sortBy")),
	}
	result, err := h.userService.List(c.Context(), middleware.GetCredentials(c), q)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.userService.GetByID(c.Context(), middleware.GetCredentials(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	var req dto.SetRoleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.userService.SetRole(c.Context(), middleware.GetCredentials(c), c.Params("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	if err := h.userService.ResetPassword(c.Context(), middleware.GetCredentials(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"reset": true})
}
