package handler

import (
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{"users": users})
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req model.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	user, err := h.service.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusCreated, user, "User created successfully")
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req model.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	user, err := h.service.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, user, "User updated successfully")
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.Delete(currentUserID(c), id); err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, nil, "User deleted successfully")
}
