package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/store"
)

type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if h.store.MockMode() {
		dbStatus = "mock"
	} else if err := h.store.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
