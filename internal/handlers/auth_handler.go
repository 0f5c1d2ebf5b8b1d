package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/dto"
	"github.com/recipeshare/server/internal/middleware"
	"github.com/recipeshare/server/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.Register(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Me resolves the current session. An anonymous or stale token yields a null
// body rather than an error.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.Me(c.Context(), middleware.GetCredentials(c))
	if err != nil {
		return err
	}
	return c.JSON(user)
}
