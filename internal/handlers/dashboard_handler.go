package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/store"
)

type DashboardHandler struct {
	store store.Store
}

func NewDashboardHandler(st store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

// Stats computes the counts at call time; nothing is cached.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.store.DashboardStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute dashboard stats",
		})
	}
	return c.JSON(stats)
}
