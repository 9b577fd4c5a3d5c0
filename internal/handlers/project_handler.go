package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/village360/village360-backend/internal/dto"
	"github.com/village360/village360-backend/internal/middleware"
	"github.com/village360/village360-backend/internal/services"
	"github.com/village360/village360-backend/internal/store"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	reportService  *services.ReportService
}

func NewProjectHandler(projectService *services.ProjectService, reportService *services.ReportService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, reportService: reportService}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.projectService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch projects",
		})
	}
	return c.JSON(projects)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid project ID",
		})
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Project not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch project",
		})
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	project, err := h.projectService.Create(userID, &req)
	if err != nil {
		if isProjectValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create project",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid project ID",
		})
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	project, err := h.projectService.Update(id, &req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Project not found",
			})
		}
		if isProjectValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update project",
		})
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid project ID",
		})
	}

	removed, err := h.projectService.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrProjectHasReports) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete project",
		})
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Project not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Project deleted"})
}

func (h *ProjectHandler) ListReports(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid project ID",
		})
	}

	reports, err := h.reportService.ListByProject(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}
	return c.JSON(reports)
}

func isProjectValidationErr(err error) bool {
	return errors.Is(err, services.ErrProjectTitleRequired) ||
		errors.Is(err, services.ErrProjectDescriptionRequired) ||
		errors.Is(err, services.ErrProjectVillageRequired) ||
		errors.Is(err, services.ErrInvalidStatus) ||
		errors.Is(err, services.ErrInvalidProgress) ||
		errors.Is(err, services.ErrInvalidBudget) ||
		errors.Is(err, services.ErrVillageNotFound)
}
