package handler

import (
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"
	"go-stockpilot/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	products  service.ProductService
	inventory service.InventoryService
}

func NewProductHandler(products service.ProductService, inventory service.InventoryService) *ProductHandler {
	return &ProductHandler{products: products, inventory: inventory}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		ListQuery: listQuery(c),
		Status:    c.Query("status"),
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.CategoryID = &id
		}
	}
	if raw := c.Query("supplier_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.SupplierID = &id
		}
	}

	products, pagination, err := h.products.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"products":   products,
		"pagination": pagination,
	})
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	product, err := h.products.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req model.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	product, err := h.products.Create(currentUserID(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusCreated, product, "Product created successfully")
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req model.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	product, err := h.products.Update(currentUserID(c), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, product, "Product updated successfully")
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := h.products.Delete(id); err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, nil, "Product deleted successfully")
}

// UpdateStock is the direct stock adjustment endpoint. It goes through the
// inventory service so every change lands in the transaction ledger.
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var req model.StockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return failBadBody(c)
	}

	result, err := h.inventory.UpdateProductStock(currentUserID(c), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, result, "Stock updated successfully")
}

func (h *ProductHandler) Transactions(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	transactions, err := h.inventory.ProductTransactions(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{"transactions": transactions})
}

func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	result, err := h.products.LowStock()
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, result)
}

func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.products.Stats()
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, stats)
}

func (h *ProductHandler) QRCode(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	dataURL, product, err := h.products.QRCode(id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, fiber.Map{
		"qr_code": dataURL,
		"product": fiber.Map{
			"id":   product.ID,
			"sku":  product.SKU,
			"name": product.Name,
		},
	})
}
