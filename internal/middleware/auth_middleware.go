package middleware

import (
	"strings"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and stores the caller's identity in
// the request context for downstream handlers.
func RequireAuth(tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Missing authorization token")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return unauthorized(c, "Invalid authorization format. Use: Bearer <token>")
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_email", claims.Email)
		c.Locals("user_name", claims.Name)
		c.Locals("user_role", claims.Role)

		return c.Next()
	}
}

// RequireAdmin gates a route to users with the admin role. It must run after
// RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != string(model.RoleAdmin) {
			appErr := apperr.Forbidden("Admin access required")
			return c.Status(appErr.Status).JSON(fiber.Map{
				"success": false,
				"error":   appErr,
			})
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	appErr := apperr.Unauthorized(message)
	return c.Status(appErr.Status).JSON(fiber.Map{
		"success": false,
		"error":   appErr,
	})
}
