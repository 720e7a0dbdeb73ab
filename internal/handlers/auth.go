package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/freelancehub/freelancehub-api/internal/auth"
	"github.com/freelancehub/freelancehub-api/internal/models"
	"github.com/freelancehub/freelancehub-api/internal/utils"
)

type AuthHandler struct {
	DB        *gorm.DB
	Tokens    *auth.TokenStore
	JWTSecret string
	Expires   int
}

type RegisterReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	mobile := strings.TrimSpace(req.Mobile)
	password := strings.TrimSpace(req.Password)
	confirm := strings.TrimSpace(req.ConfirmPassword)

	if name == "" || email == "" || mobile == "" || password == "" || confirm == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All fields are required: Name, Email, Mobile, Password, and Confirm Password!",
		})
	}
	if password != confirm {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Passwords do not match!",
		})
	}

	var existing models.Freelancer
	err := h.DB.Where("email = ? OR mobile = ?", email, mobile).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Freelancer with this email or mobile already exists!",
		})
	} else if err != gorm.ErrRecordNotFound {
		utils.Logger.Error("freelancer lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		utils.Logger.Error("password hashing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	freelancer := models.Freelancer{
		Name:     name,
		Email:    email,
		Mobile:   mobile,
		Password: hashed,
	}

	// The unique indexes on email and mobile back the pre-check above, so a
	// concurrent duplicate registration fails here instead of inserting twice.
	if err := h.DB.Create(&freelancer).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Freelancer with this email or mobile already exists!",
		})
	}

	token, err := utils.SignJWT(h.JWTSecret, freelancer.ID.String(), h.Expires)
	if err != nil {
		utils.Logger.Error("token signing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Freelancer registered successfully",
		"token":   token,
		"freelancer": fiber.Map{
			"id":        freelancer.ID,
			"name":      freelancer.Name,
			"email":     freelancer.Email,
			"mobile":    freelancer.Mobile,
			"createdAt": freelancer.CreatedAt,
		},
	})
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)

	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	var freelancer models.Freelancer
	if err := h.DB.Where("email = ?", email).First(&freelancer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Freelancer not found. Please register first.",
			})
		}
		utils.Logger.Error("freelancer lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Something went wrong during login",
		})
	}

	if !utils.CheckPassword(freelancer.Password, password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	token, err := utils.SignJWT(h.JWTSecret, freelancer.ID.String(), h.Expires)
	if err != nil {
		utils.Logger.Error("token signing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Something went wrong during login",
		})
	}

	skills := []string(freelancer.Skills)
	if skills == nil {
		skills = []string{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"freelancer": fiber.Map{
			"id":       freelancer.ID,
			"name":     freelancer.Name,
			"email":    freelancer.Email,
			"mobile":   freelancer.Mobile,
			"skills":   skills,
			"location": freelancer.Location,
		},
	})
}

// Logout revokes the presented session token for the remainder of its
// lifetime. Requires JWTAuth to have stored the claims already.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*utils.Claims)
	if !ok || claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing or malformed authorization token",
		})
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := h.Tokens.Revoke(c.Context(), claims.ID, ttl); err != nil {
		utils.Logger.Error("token revocation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}
