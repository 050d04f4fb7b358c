package service

import (
	"testing"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInventoryService(db *gorm.DB) InventoryService {
	notifier := NewNotificationService(repository.NewNotificationRepo(db), nil, testLogger())
	return NewInventoryService(
		repository.NewProductRepo(db),
		repository.NewTransactionRepo(db),
		notifier,
		db,
		nil,
		testLogger(),
	)
}

func TestRecordTransactionStockIn(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 100, 10)
	svc := newInventoryService(db)

	entry, err := svc.RecordTransaction(user.ID, &model.TransactionRequest{
		ProductID: product.ID,
		Type:      model.TxStockIn,
		Quantity:  20,
	})
	require.NoError(t, err)

	assert.Equal(t, 100, entry.BeforeQty)
	assert.Equal(t, 120, entry.AfterQty)
	assert.Equal(t, 12.5, entry.UnitPrice)
	assert.Equal(t, 250.0, entry.TotalValue)

	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 120, reloaded.Quantity)
}

func TestRecordTransactionInsufficientStockLeavesNoTrace(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 5, 10)
	svc := newInventoryService(db)

	_, err := svc.RecordTransaction(user.ID, &model.TransactionRequest{
		ProductID: product.ID,
		Type:      model.TxStockOut,
		Quantity:  10,
	})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.Code)

	// Quantity untouched, no ledger entry written.
	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 5, reloaded.Quantity)

	var count int64
	require.NoError(t, db.Model(&model.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecordTransactionAdjustmentSetsAbsoluteQuantity(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 100, 10)
	svc := newInventoryService(db)

	entry, err := svc.RecordTransaction(user.ID, &model.TransactionRequest{
		ProductID: product.ID,
		Type:      model.TxAdjustment,
		Quantity:  42,
	})
	require.NoError(t, err)

	assert.Equal(t, 100, entry.BeforeQty)
	assert.Equal(t, 42, entry.AfterQty)

	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 42, reloaded.Quantity)
}

func TestRecordTransactionDamageSubtracts(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 30, 10)
	svc := newInventoryService(db)

	entry, err := svc.RecordTransaction(user.ID, &model.TransactionRequest{
		ProductID: product.ID,
		Type:      model.TxDamage,
		Quantity:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, 23, entry.AfterQty)
}

func TestRecordTransactionUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	svc := newInventoryService(db)

	_, err := svc.RecordTransaction(user.ID, &model.TransactionRequest{
		ProductID: uuid.New(),
		Type:      model.TxStockIn,
		Quantity:  1,
	})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.Code)
}

func TestRecordTransactionInactiveProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 10, 5)
	require.NoError(t, db.Model(product).Update("is_active", false).Error)
	svc := newInventoryService(db)

	_, err := svc.RecordTransaction(user.ID, &model.TransactionRequest{
		ProductID: product.ID,
		Type:      model.TxStockIn,
		Quantity:  1,
	})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.Code)
}

func TestRecordTransactionValidation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	svc := newInventoryService(db)

	_, err := svc.RecordTransaction(user.ID, &model.TransactionRequest{
		Type:     "teleport",
		Quantity: 0,
	})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestRecordTransactionCreatesLowStockNotification(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 12, 10)
	svc := newInventoryService(db)

	_, err := svc.RecordTransaction(user.ID, &model.TransactionRequest{
		ProductID: product.ID,
		Type:      model.TxStockOut,
		Quantity:  5,
	})
	require.NoError(t, err)

	var notifications []model.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotifLowStock, notifications[0].Type)
	assert.Equal(t, user.ID, notifications[0].UserID)
}

func TestRecordTransactionCreatesOutOfStockNotification(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 5, 10)
	svc := newInventoryService(db)

	_, err := svc.RecordTransaction(user.ID, &model.TransactionRequest{
		ProductID: product.ID,
		Type:      model.TxStockOut,
		Quantity:  5,
	})
	require.NoError(t, err)

	var notifications []model.Notification
	require.NoError(t, db.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotifOutOfStock, notifications[0].Type)
}

func TestRecordTransactionAboveMinimumStaysSilent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 100, 10)
	svc := newInventoryService(db)

	_, err := svc.RecordTransaction(user.ID, &model.TransactionRequest{
		ProductID: product.ID,
		Type:      model.TxStockOut,
		Quantity:  5,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateProductStockAdd(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 10, 5)
	svc := newInventoryService(db)

	result, err := svc.UpdateProductStock(user.ID, product.ID, &model.StockUpdateRequest{
		Quantity:  15,
		Operation: "add",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, result.PreviousQuantity)
	assert.Equal(t, 25, result.NewQuantity)
	assert.Equal(t, "add", result.Operation)

	var entry model.Transaction
	require.NoError(t, db.First(&entry, "product_id = ?", product.ID).Error)
	assert.Equal(t, model.TxStockIn, entry.Type)
	assert.Equal(t, 15, entry.Quantity)
}

func TestUpdateProductStockSubtractClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 5, 3)
	svc := newInventoryService(db)

	result, err := svc.UpdateProductStock(user.ID, product.ID, &model.StockUpdateRequest{
		Quantity:  10,
		Operation: "subtract",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.NewQuantity)

	// Ledger records the actual movement, not the requested amount.
	var entry model.Transaction
	require.NoError(t, db.First(&entry, "product_id = ?", product.ID).Error)
	assert.Equal(t, model.TxStockOut, entry.Type)
	assert.Equal(t, 5, entry.Quantity)
	assert.Equal(t, 0, entry.AfterQty)
}

func TestUpdateProductStockDefaultsToSet(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 10, 5)
	svc := newInventoryService(db)

	result, err := svc.UpdateProductStock(user.ID, product.ID, &model.StockUpdateRequest{
		Quantity: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, "set", result.Operation)
	assert.Equal(t, 30, result.NewQuantity)

	var entry model.Transaction
	require.NoError(t, db.First(&entry, "product_id = ?", product.ID).Error)
	assert.Equal(t, model.TxStockIn, entry.Type)
	assert.Equal(t, 20, entry.Quantity)
	assert.Equal(t, "Stock set operation", entry.Notes)
}

func TestListTransactionsPagination(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 1000, 10)
	svc := newInventoryService(db)

	for i := 0; i < 25; i++ {
		_, err := svc.RecordTransaction(user.ID, &model.TransactionRequest{
			ProductID: product.ID,
			Type:      model.TxStockIn,
			Quantity:  1,
		})
		require.NoError(t, err)
	}

	filter := repository.TransactionFilter{}
	filter.Page = 2
	filter.Limit = 10

	transactions, pagination, err := svc.ListTransactions(filter)
	require.NoError(t, err)

	assert.Len(t, transactions, 10)
	assert.Equal(t, int64(25), pagination.Total)
	assert.Equal(t, 3, pagination.Pages)
	assert.Equal(t, 2, pagination.Page)
}
