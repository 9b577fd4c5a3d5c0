package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/services"
	"github.com/village360/village360-backend/internal/store"
)

type VillageHandler struct {
	villageService *services.VillageService
	projectService *services.ProjectService
	amenityService *services.AmenityService
}

func NewVillageHandler(villageService *services.VillageService, projectService *services.ProjectService, amenityService *services.AmenityService) *VillageHandler {
	return &VillageHandler{
		villageService: villageService,
		projectService: projectService,
		amenityService: amenityService,
	}
}

func (h *VillageHandler) List(c *fiber.Ctx) error {
	villages, err := h.villageService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch villages",
		})
	}
	return c.JSON(villages)
}

// Get returns the village together with its amenity list.
func (h *VillageHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid village ID",
		})
	}

	village, err := h.villageService.GetWithAmenities(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Village not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch village",
		})
	}
	return c.JSON(village)
}

func (h *VillageHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateVillageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	village, err := h.villageService.Create(&req)
	if err != nil {
		if isVillageValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create village",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(village)
}

func (h *VillageHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid village ID",
		})
	}

	var req dto.UpdateVillageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	village, err := h.villageService.Update(id, &req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Village not found",
			})
		}
		if isVillageValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update village",
		})
	}
	return c.JSON(village)
}

func (h *VillageHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid village ID",
		})
	}

	removed, err := h.villageService.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrVillageHasProjects) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete village",
		})
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Village not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Village deleted"})
}

func (h *VillageHandler) ListProjects(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid village ID",
		})
	}

	projects, err := h.projectService.ListByVillage(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch projects",
		})
	}
	return c.JSON(projects)
}

func (h *VillageHandler) ListAmenities(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid village ID",
		})
	}

	amenities, err := h.amenityService.ListByVillage(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Village not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch amenities",
		})
	}
	return c.JSON(amenities)
}

// UpsertAmenity updates or creates the amenity row keyed on
// (village id, amenity_type).
func (h *VillageHandler) UpsertAmenity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid village ID",
		})
	}

	var req dto.UpsertAmenityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	amenity, err := h.amenityService.Upsert(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVillageNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrAmenityTypeRequired),
			errors.Is(err, services.ErrInvalidCount):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update amenity",
		})
	}
	return c.JSON(amenity)
}

func isVillageValidationErr(err error) bool {
	return errors.Is(err, services.ErrVillageNameRequired) ||
		errors.Is(err, services.ErrVillageDistrictRequired) ||
		errors.Is(err, services.ErrVillageBlockRequired) ||
		errors.Is(err, services.ErrCoordinatesRequired) ||
		errors.Is(err, services.ErrInvalidLatitude) ||
		errors.Is(err, services.ErrInvalidLongitude) ||
		errors.Is(err, services.ErrInvalidPopulation)
}
