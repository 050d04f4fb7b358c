package middleware

import (
	"go-stockpilot/internal/apperr"
	"go-stockpilot/pkg/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireDatabase short-circuits API requests with a 503 while the database is
// unreachable. The server itself stays up so health checks and reconnects can
// proceed.
func RequireDatabase(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil || database.Ping(db) != nil {
			appErr := apperr.DatabaseUnavailable()
			return c.Status(appErr.Status).JSON(fiber.Map{
				"success": false,
				"error":   appErr,
			})
		}
		return c.Next()
	}
}
