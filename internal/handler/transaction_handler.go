package handler

import (
	"time"

	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"
	"go-stockpilot/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	service service.InventoryService
}

func NewTransactionHandler(s service.InventoryService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req model.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	transaction, err := h.service.RecordTransaction(currentUserID(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusCreated, transaction, "Transaction recorded successfully")
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	filter := repository.TransactionFilter{
		ListQuery: listQuery(c),
		Type:      c.Query("type"),
	}
	if raw := c.Query("product_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.ProductID = &id
		}
	}
	if t, ok := parseDate(c.Query("start_date")); ok {
		filter.StartDate = &t
	}
	if t, ok := parseDate(c.Query("end_date")); ok {
		filter.EndDate = &t
	}

	transactions, pagination, err := h.service.ListTransactions(filter)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"transactions": transactions,
		"pagination":   pagination,
	})
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	transaction, err := h.service.GetTransaction(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, transaction)
}

func (h *TransactionHandler) ByProduct(c *fiber.Ctx) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return fail(c, err)
	}

	transactions, err := h.service.ProductTransactions(productID)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{"transactions": transactions})
}

func (h *TransactionHandler) Stats(c *fiber.Ctx) error {
	var startDate, endDate *time.Time
	if t, ok := parseDate(c.Query("start_date")); ok {
		startDate = &t
	}
	if t, ok := parseDate(c.Query("end_date")); ok {
		endDate = &t
	}

	stats, err := h.service.TransactionStats(startDate, endDate)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, stats)
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
