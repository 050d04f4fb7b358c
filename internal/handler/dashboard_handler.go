package handler

import (
	"go-stockpilot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, stats)
}

func (h *DashboardHandler) Charts(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	movement, err := h.service.StockMovement(days)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{"stock_movement": movement})
}

func (h *DashboardHandler) RecentActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	transactions, err := h.service.RecentActivity(limit)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{"transactions": transactions})
}
