package handler

import (
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(s service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: s}
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, pagination, err := h.service.List(listQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"suppliers":  suppliers,
		"pagination": pagination,
	})
}

func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	supplier, err := h.service.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, supplier)
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req model.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	supplier, err := h.service.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusCreated, supplier, "Supplier created successfully")
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req model.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	supplier, err := h.service.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, supplier, "Supplier updated successfully")
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, nil, "Supplier deleted successfully")
}
