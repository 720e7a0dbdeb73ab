package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/freelancehub/freelancehub-api/internal/models"
	"github.com/freelancehub/freelancehub-api/internal/utils"
)

type TeamHandler struct {
	DB *gorm.DB
}

func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{DB: db}
}

type TeamMemberCreateReq struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
	Mobile       string `json:"mobile"`
}

func (h *TeamHandler) CreateTeamMember(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	var req TeamMemberCreateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := strings.TrimSpace(req.Role)

	if name == "" || email == "" || role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, email, and role are required",
		})
	}

	var existing models.TeamMember
	err := h.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Team member with this email already exists",
		})
	} else if err != gorm.ErrRecordNotFound {
		utils.Logger.Error("team member lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error while creating team member",
		})
	}

	member := models.TeamMember{
		Name:         name,
		Email:        email,
		Role:         role,
		Status:       req.Status,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		Mobile:       req.Mobile,
	}

	if err := h.DB.Create(&member).Error; err != nil {
		utils.Logger.Error("team member create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error while creating team member",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Team member created successfully",
		"teamMember": member,
		"addedBy":    freelancerID,
	})
}

func (h *TeamHandler) GetAllTeamMembers(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	var members []models.TeamMember
	if err := h.DB.Find(&members).Error; err != nil {
		utils.Logger.Error("team members fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching team members",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Team members fetched successfully",
		"members":  members,
		"viewedBy": freelancerID,
	})
}

func (h *TeamHandler) GetSingleTeamMember(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid team member id",
		})
	}

	var member models.TeamMember
	if err := h.DB.First(&member, "id = ?", memberID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Team member not found",
			})
		}
		utils.Logger.Error("team member fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching team member",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Team member fetched successfully",
		"member":   member,
		"viewedBy": freelancerID,
	})
}

type TeamMemberUpdateReq struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Role         *string `json:"role"`
	Status       *string `json:"status"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profileImage"`
	Mobile       *string `json:"mobile"`
}

func (h *TeamHandler) UpdateTeamMember(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid team member id",
		})
	}

	var req TeamMemberUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	var member models.TeamMember
	if err := h.DB.First(&member, "id = ?", memberID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Team member not found",
			})
		}
		utils.Logger.Error("team member fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating team member",
		})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}
	if req.Mobile != nil {
		updates["mobile"] = *req.Mobile
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&member).Updates(updates).Error; err != nil {
			utils.Logger.Error("team member update failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error updating team member",
			})
		}
		if err := h.DB.First(&member, "id = ?", memberID).Error; err != nil {
			utils.Logger.Error("team member reload failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error updating team member",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Team member updated successfully",
		"updatedMember": member,
		"updatedBy":     freelancerID,
	})
}

func (h *TeamHandler) DeleteTeamMember(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid team member id",
		})
	}

	var member models.TeamMember
	if err := h.DB.First(&member, "id = ?", memberID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Team member not found",
			})
		}
		utils.Logger.Error("team member fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting team member",
		})
	}

	if err := h.DB.Delete(&member).Error; err != nil {
		utils.Logger.Error("team member delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting team member",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Team member deleted successfully",
		"deletedMember": member,
		"deletedBy":     freelancerID,
	})
}
