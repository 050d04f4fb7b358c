package service

import (
	"strings"
	"testing"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) ProductService {
	notifier := NewNotificationService(repository.NewNotificationRepo(db), nil, testLogger())
	return NewProductService(repository.NewProductRepo(db), notifier, "http://localhost:5173", testLogger())
}

func TestCreateProductGeneratesSKU(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	svc := newProductService(db)

	product, err := svc.Create(user.ID, &model.ProductRequest{
		Name:      "Widget",
		Quantity:  100,
		UnitPrice: 9.99,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(product.SKU, "PRD-"), "got %q", product.SKU)
	assert.Equal(t, product.SKU, strings.ToUpper(product.SKU))
	assert.Equal(t, "pcs", product.Unit)
	assert.Equal(t, 10, product.MinStockLevel)
	assert.Equal(t, 10, product.ReorderPoint)
	assert.Equal(t, 50, product.ReorderQty)
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	svc := newProductService(db)

	_, err := svc.Create(user.ID, &model.ProductRequest{
		Name:      "Widget",
		SKU:       "WID-001",
		Quantity:  1,
		UnitPrice: 1,
	})
	require.NoError(t, err)

	_, err = svc.Create(user.ID, &model.ProductRequest{
		Name:      "Widget Clone",
		SKU:       "WID-001",
		Quantity:  1,
		UnitPrice: 1,
	})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "DUPLICATE_VALUE", appErr.Code)
}

func TestCreateProductAtMinimumNotifiesImmediately(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	svc := newProductService(db)

	minStock := 20
	_, err := svc.Create(user.ID, &model.ProductRequest{
		Name:          "Scarce Widget",
		Quantity:      5,
		UnitPrice:     1,
		MinStockLevel: &minStock,
	})
	require.NoError(t, err)

	var notifications []model.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotifLowStock, notifications[0].Type)
}

func TestGetProductDerivesStockStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	// Per-product minimum drives the detail status, not the list threshold.
	product := seedProduct(t, db, 40, 10)
	got, err := svc.Get(product.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StockStatusIn, got.StockStatus)

	low := seedProduct(t, db, 8, 10)
	got, err = svc.Get(low.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StockStatusLow, got.StockStatus)

	out := seedProduct(t, db, 0, 10)
	got, err = svc.Get(out.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StockStatusOut, got.StockStatus)
}

func TestListFilterUsesFixedThreshold(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	// 40 < 50: low on the list filter even though its own minimum says fine.
	seedProduct(t, db, 40, 10)
	seedProduct(t, db, 200, 10)
	seedProduct(t, db, 0, 10)

	filter := repository.ProductFilter{Status: "low_stock"}
	products, _, err := svc.List(filter)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 40, products[0].Quantity)

	filter = repository.ProductFilter{Status: "out_of_stock"}
	products, _, err = svc.List(filter)
	require.NoError(t, err)
	require.Len(t, products, 1)

	filter = repository.ProductFilter{Status: "in_stock"}
	products, _, err = svc.List(filter)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 200, products[0].Quantity)
}

func TestDeleteProductIsSoft(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	product := seedProduct(t, db, 10, 5)

	require.NoError(t, svc.Delete(product.ID))

	// Row survives for ledger history, hidden from lookups.
	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	assert.False(t, reloaded.IsActive)

	_, err := svc.Get(product.ID)
	require.Error(t, err)
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.Code)
}

func TestProductStats(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	seedProduct(t, db, 0, 10)   // out of stock
	seedProduct(t, db, 30, 10)  // low by list threshold
	seedProduct(t, db, 100, 10) // in stock

	stats, err := svc.Stats()
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.OutOfStockCount)
	assert.Equal(t, int64(1), stats.LowStockCount)
	assert.Equal(t, int64(1), stats.InStockCount)
	assert.Equal(t, int64(130), stats.TotalQuantity)
	assert.InDelta(t, 12.5*130, stats.TotalInventoryValue, 0.001)
}

func TestLowStockOverview(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	seedProduct(t, db, 0, 10)
	seedProduct(t, db, 30, 10)
	seedProduct(t, db, 100, 10)

	result, err := svc.LowStock()
	require.NoError(t, err)

	assert.Equal(t, 1, result.LowStockCount)
	assert.Equal(t, 1, result.OutOfStockCount)
	require.Len(t, result.LowStock, 1)
	assert.Equal(t, 30, result.LowStock[0].Quantity)
}

func TestProductQRCode(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	product := seedProduct(t, db, 10, 5)

	dataURL, got, err := svc.QRCode(product.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))
	assert.Equal(t, product.ID, got.ID)
}
