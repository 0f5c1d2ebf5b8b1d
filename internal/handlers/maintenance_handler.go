package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/services"
)

type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// ResetDemo discards the stored dataset and regenerates the deterministic
// demo data from scratch.
func (h *MaintenanceHandler) ResetDemo(c *fiber.Ctx) error {
	if err := h.maintenanceService.ResetDemo(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"reset": true})
}
