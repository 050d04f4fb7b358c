package handler

import (
	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Every response uses the same envelope: {success, data, message} on the happy
// path, {success, error:{code, message, details}} on failure.

func success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func successMessage(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// fail maps domain errors to their wire form. Anything outside the coded
// taxonomy surfaces as a generic 500 so internals never leak.
func fail(c *fiber.Ctx, err error) error {
	if appErr, ok := apperr.As(err); ok {
		return c.Status(appErr.Status).JSON(fiber.Map{
			"success": false,
			"error":   appErr,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error": fiber.Map{
			"code":    "INTERNAL_ERROR",
			"message": "An unexpected error occurred",
		},
	})
}

func failBadBody(c *fiber.Ctx) error {
	return fail(c, apperr.BadRequest("INVALID_INPUT", "Invalid request body"))
}

// parseID reads a path parameter as a UUID.
func parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("INVALID_INPUT", "Invalid "+param+" format")
	}
	return id, nil
}

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals("user_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// listQuery pulls the shared pagination/search/sort parameters.
func listQuery(c *fiber.Ctx) repository.ListQuery {
	return repository.ListQuery{
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 0),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}
