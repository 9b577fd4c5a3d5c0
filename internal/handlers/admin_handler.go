package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/store"
)

type AdminHandler struct {
	store store.Store
}

func NewAdminHandler(st store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.store.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch users",
		})
	}

	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = dto.NewUserResponse(&users[i])
	}
	return c.JSON(resp)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	removed, err := h.store.DeleteUser(id)
	if err != nil {
		if errors.Is(err, store.ErrHasDependents) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "User still owns projects or reports",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete user",
		})
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
