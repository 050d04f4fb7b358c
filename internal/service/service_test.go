package service

import (
	"fmt"
	"testing"

	"go-stockpilot/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test and migrates the full
// schema. Each test gets its own named memory DB so parallel tests never
// share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.Transaction{},
		&model.PurchaseOrder{},
		&model.Notification{},
	))
	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func seedUser(t *testing.T, db *gorm.DB, role model.UserRole) *model.User {
	t.Helper()

	user := &model.User{
		Name:     "Test User",
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedSupplier(t *testing.T, db *gorm.DB) *model.Supplier {
	t.Helper()

	supplier := &model.Supplier{
		Name:         "Acme Wholesale",
		Company:      "Acme Corp",
		Email:        fmt.Sprintf("%s@acme.example", uuid.NewString()),
		LeadTimeDays: 7,
		IsActive:     true,
	}
	require.NoError(t, db.Create(supplier).Error)
	return supplier
}

func seedProduct(t *testing.T, db *gorm.DB, quantity, minStock int) *model.Product {
	t.Helper()

	product := &model.Product{
		SKU:           fmt.Sprintf("SKU-%s", uuid.NewString()[:8]),
		Name:          "Test Product",
		Quantity:      quantity,
		Unit:          "pcs",
		UnitPrice:     12.5,
		MinStockLevel: minStock,
		ReorderPoint:  10,
		ReorderQty:    50,
		IsActive:      true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
