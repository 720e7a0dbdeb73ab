package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/freelancehub/freelancehub-api/internal/models"
	"github.com/freelancehub/freelancehub-api/internal/utils"
)

type FreelancerHandler struct {
	DB *gorm.DB
}

func NewFreelancerHandler(db *gorm.DB) *FreelancerHandler {
	return &FreelancerHandler{DB: db}
}

func (h *FreelancerHandler) GetFreelancer(c *fiber.Ctx) error {
	freelancerID, err := uuid.Parse(c.Params("freelancerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid freelancer id",
		})
	}

	var freelancer models.Freelancer
	if err := h.DB.First(&freelancer, "id = ?", freelancerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Freelancer not found!",
			})
		}
		utils.Logger.Error("freelancer fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	skills := []string(freelancer.Skills)
	if skills == nil {
		skills = []string{}
	}
	profileImage := freelancer.ProfileImage
	if profileImage == "" {
		profileImage = "default-profile-image.jpg"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Freelancer details retrieved successfully!",
		"id":           freelancer.ID,
		"name":         freelancer.Name,
		"email":        freelancer.Email,
		"mobile":       freelancer.Mobile,
		"skills":       skills,
		"location":     freelancer.Location,
		"profileImage": profileImage,
	})
}
