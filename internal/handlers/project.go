package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/freelancehub/freelancehub-api/internal/models"
	"github.com/freelancehub/freelancehub-api/internal/services/projects"
	"github.com/freelancehub/freelancehub-api/internal/utils"
)

type ProjectHandler struct {
	DB       *gorm.DB
	Projects *projects.Service
}

func NewProjectHandler(db *gorm.DB, svc *projects.Service) *ProjectHandler {
	return &ProjectHandler{DB: db, Projects: svc}
}

type ProjectCreateReq struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Budget      int64      `json:"budget"`
	Deadline    *time.Time `json:"deadline"`
	Attachments []string   `json:"attachments"`
	ClientID    string     `json:"clientId"`
	AssignedTo  []string   `json:"assignedTo"`
	Status      string     `json:"status"`
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	freelancerID, err := uuid.Parse(c.Params("freelancerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid freelancer id",
		})
	}

	var req ProjectCreateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" ||
		req.Budget == 0 || strings.TrimSpace(req.ClientID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Title, description, budget, and clientId are required",
		})
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client id",
		})
	}

	assignedTo, err := parseUUIDs(req.AssignedTo)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid team member id",
		})
	}

	project, err := h.Projects.Create(freelancerID, projects.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Attachments: req.Attachments,
		ClientID:    clientID,
		AssignedTo:  assignedTo,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, projects.ErrClientNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Client not found",
			})
		}
		utils.Logger.Error("project create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error while creating project",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Project created successfully",
		"project": project,
	})
}

func (h *ProjectHandler) GetProjects(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	var list []models.Project
	if err := h.DB.
		Where("assigned_freelancer = ?", freelancerID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {

		utils.Logger.Error("projects fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error while fetching projects",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Projects fetched successfully",
		"projects": list,
	})
}

type ProjectUpdateReq struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Budget      *int64     `json:"budget"`
	Deadline    *time.Time `json:"deadline"`
	Attachments *[]string  `json:"attachments"`
	AssignedTo  []string   `json:"assignedTo"`
	Status      *string    `json:"status"`
	Progress    *int       `json:"progress"`
}

func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	freelancerID, err := uuid.Parse(c.Params("freelancerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid freelancer id",
		})
	}
	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid project id",
		})
	}

	var req ProjectUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Progress != nil && (*req.Progress < 0 || *req.Progress > 100) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Progress must be between 0 and 100",
		})
	}

	assignedTo, err := parseUUIDs(req.AssignedTo)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid team member id",
		})
	}

	project, err := h.Projects.Update(freelancerID, projectID, projects.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Attachments: req.Attachments,
		AssignedTo:  assignedTo,
		Status:      req.Status,
		Progress:    req.Progress,
	})
	if err != nil {
		if errors.Is(err, projects.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Project not found",
			})
		}
		utils.Logger.Error("project update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating project",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Project updated successfully",
		"project": project,
	})
}

func parseUUIDs(in []string) ([]uuid.UUID, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]uuid.UUID, 0, len(in))
	for _, s := range in {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
