package middleware

import (
	"log"
	"strings"

	"carekitchen/internal/domain"
	"carekitchen/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired checks for a valid session token and stores the resolved
// principal (id and role) in the request context. Services never read
// ambient session state; handlers pass the principal in explicitly.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  "Authorization header is required",
				"category": domain.CategoryDanger,
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  "Authorization header format must be 'Bearer <token>'",
				"category": domain.CategoryDanger,
			})
		}

		userID, role, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("Session token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  "Invalid or expired session",
				"category": domain.CategoryDanger,
			})
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)

		return c.Next()
	}
}
