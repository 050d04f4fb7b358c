package handler

import (
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"
	"go-stockpilot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseOrderHandler struct {
	service service.PurchaseOrderService
}

func NewPurchaseOrderHandler(s service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: s}
}

func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	filter := repository.PurchaseOrderFilter{
		ListQuery: listQuery(c),
		Status:    c.Query("status"),
	}

	orders, pagination, err := h.service.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"purchase_orders": orders,
		"pagination":      pagination,
	})
}

func (h *PurchaseOrderHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	po, err := h.service.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, po)
}

func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var req model.PurchaseOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	po, err := h.service.Create(currentUserID(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusCreated, po, "Purchase order created successfully")
}

func (h *PurchaseOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req model.POStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	po, err := h.service.UpdateStatus(currentUserID(c), id, req.Status)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, po, "Purchase order status updated")
}

func (h *PurchaseOrderHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	po, err := h.service.Cancel(currentUserID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, po, "Purchase order cancelled")
}
