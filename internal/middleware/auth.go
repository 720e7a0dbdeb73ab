package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/freelancehub/freelancehub-api/internal/auth"
	"github.com/freelancehub/freelancehub-api/internal/utils"
)

// JWTAuth validates the bearer token and stores the verified claims in
// locals. Revoked tokens (logout) are rejected even before expiry.
func JWTAuth(secret string, tokens *auth.TokenStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenStr == "" || tokenStr == header {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Missing or malformed authorization token",
			})
		}

		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		if tokens != nil {
			revoked, err := tokens.IsRevoked(c.Context(), claims.ID)
			if err != nil {
				utils.Logger.Error("token revocation check failed", zap.Error(err))
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "Server error",
				})
			}
			if revoked {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Token has been revoked",
				})
			}
		}

		c.Locals("claims", claims)
		c.Locals("freelancerId", claims.FreelancerID)
		return c.Next()
	}
}

// RequireSelf rejects requests whose token identity does not match the
// :freelancerId path parameter. Must run after JWTAuth on the same route.
func RequireSelf() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("freelancerId").(string)
		if uid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Missing or malformed authorization token",
			})
		}
		if uid != c.Params("freelancerId") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Token does not authorize this freelancer",
			})
		}
		return c.Next()
	}
}
