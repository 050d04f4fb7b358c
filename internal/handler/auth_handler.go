package handler

import (
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req model.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	result, err := h.service.Signup(&req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusCreated, result, "Account created successfully")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	result, err := h.service.Login(&req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, result, "Login successful")
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req model.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	result, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, result)
}

// Logout is stateless: tokens expire on their own, the client discards them.
// The endpoint exists so clients have a uniform call to end a session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return successMessage(c, fiber.StatusOK, nil, "Logged out successfully")
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.service.CurrentUser(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, user.ToResponse())
}
