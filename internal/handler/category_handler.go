package handler

import (
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, pagination, err := h.service.List(listQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"categories": categories,
		"pagination": pagination,
	})
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	category, err := h.service.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, category)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req model.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	category, err := h.service.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusCreated, category, "Category created successfully")
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req model.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	category, err := h.service.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, category, "Category updated successfully")
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, nil, "Category deleted successfully")
}
