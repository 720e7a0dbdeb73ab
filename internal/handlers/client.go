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

type ClientHandler struct {
	DB *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{DB: db}
}

type ClientCreateReq struct {
	Name                     string `json:"name"`
	Email                    string `json:"email"`
	Mobile                   string `json:"mobile"`
	Password                 string `json:"password"`
	CompanyName              string `json:"companyName"`
	ProfileImage             string `json:"profileImage"`
	Address                  string `json:"address"`
	Bio                      string `json:"bio"`
	Website                  string `json:"website"`
	TermsAndConditionsAgreed bool   `json:"termsAndConditionsAgreed"`
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	var req ClientCreateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	mobile := strings.TrimSpace(req.Mobile)
	password := strings.TrimSpace(req.Password)

	if name == "" || email == "" || mobile == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, email, mobile, and password are required",
		})
	}

	var existing models.Client
	err := h.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Client with this email already exists",
		})
	} else if err != gorm.ErrRecordNotFound {
		utils.Logger.Error("client lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error while creating client",
		})
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		utils.Logger.Error("password hashing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error while creating client",
		})
	}

	client := models.Client{
		Name:                     name,
		Email:                    email,
		Mobile:                   mobile,
		Password:                 hashed,
		CompanyName:              req.CompanyName,
		ProfileImage:             req.ProfileImage,
		Address:                  req.Address,
		Bio:                      req.Bio,
		Website:                  req.Website,
		TermsAndConditionsAgreed: req.TermsAndConditionsAgreed,
	}

	if err := h.DB.Create(&client).Error; err != nil {
		utils.Logger.Error("client create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error while creating client",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Client created successfully",
		"client":       client,
		"byFreelancer": freelancerID,
	})
}

func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	var clients []models.Client
	if err := h.DB.Find(&clients).Error; err != nil {
		utils.Logger.Error("clients fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching clients",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Clients fetched successfully",
		"clients":  clients,
		"viewedBy": freelancerID,
	})
}

func (h *ClientHandler) GetSingleClient(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	clientID, err := uuid.Parse(c.Params("clientId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client id",
		})
	}

	var client models.Client
	if err := h.DB.First(&client, "id = ?", clientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Client not found",
			})
		}
		utils.Logger.Error("client fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching client",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Client fetched successfully",
		"client":   client,
		"viewedBy": freelancerID,
	})
}

type ClientUpdateReq struct {
	Name                     *string `json:"name"`
	Email                    *string `json:"email"`
	Mobile                   *string `json:"mobile"`
	Password                 *string `json:"password"`
	CompanyName              *string `json:"companyName"`
	ProfileImage             *string `json:"profileImage"`
	Address                  *string `json:"address"`
	Bio                      *string `json:"bio"`
	Website                  *string `json:"website"`
	TermsAndConditionsAgreed *bool   `json:"termsAndConditionsAgreed"`
}

func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	clientID, err := uuid.Parse(c.Params("clientId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client id",
		})
	}

	var req ClientUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	var client models.Client
	if err := h.DB.First(&client, "id = ?", clientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Client not found",
			})
		}
		utils.Logger.Error("client fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating client",
		})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Mobile != nil {
		updates["mobile"] = *req.Mobile
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			utils.Logger.Error("password hashing failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error updating client",
			})
		}
		updates["password"] = hashed
	}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.TermsAndConditionsAgreed != nil {
		updates["terms_and_conditions_agreed"] = *req.TermsAndConditionsAgreed
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&client).Updates(updates).Error; err != nil {
			utils.Logger.Error("client update failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error updating client",
			})
		}
		if err := h.DB.First(&client, "id = ?", clientID).Error; err != nil {
			utils.Logger.Error("client reload failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error updating client",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Client updated successfully",
		"updatedClient": client,
		"updatedBy":     freelancerID,
	})
}

func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	freelancerID := c.Params("freelancerId")

	clientID, err := uuid.Parse(c.Params("clientId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client id",
		})
	}

	var client models.Client
	if err := h.DB.First(&client, "id = ?", clientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Client not found",
			})
		}
		utils.Logger.Error("client fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting client",
		})
	}

	if err := h.DB.Delete(&client).Error; err != nil {
		utils.Logger.Error("client delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting client",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Client deleted successfully",
		"deletedClient": client,
		"deletedBy":     freelancerID,
	})
}
