package service

import (
	"testing"

	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) DashboardService {
	return NewDashboardService(
		repository.NewProductRepo(db),
		repository.NewTransactionRepo(db),
		repository.NewPurchaseOrderRepo(db),
	)
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleAdmin)
	supplier := seedSupplier(t, db)
	product := seedProduct(t, db, 100, 10)
	seedProduct(t, db, 0, 10)

	poSvc := newPOService(db)
	_, err := poSvc.Create(user.ID, &model.PurchaseOrderRequest{
		ProductID:  product.ID,
		SupplierID: supplier.ID,
		Quantity:   10,
		UnitPrice:  2,
	})
	require.NoError(t, err)

	svc := newDashboardService(db)
	stats, err := svc.Stats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.OutOfStockCount)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, int64(0), stats.ApprovedOrders)
	assert.InDelta(t, 100*12.5, stats.TotalInventoryValue, 0.001)
}

func TestDashboardStockMovement(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 100, 10)

	inv := newInventoryService(db)
	_, err := inv.RecordTransaction(user.ID, &model.TransactionRequest{
		ProductID: product.ID,
		Type:      model.TxStockIn,
		Quantity:  30,
	})
	require.NoError(t, err)
	_, err = inv.RecordTransaction(user.ID, &model.TransactionRequest{
		ProductID: product.ID,
		Type:      model.TxStockOut,
		Quantity:  12,
	})
	require.NoError(t, err)

	svc := newDashboardService(db)
	points, err := svc.StockMovement(7)
	require.NoError(t, err)

	require.Len(t, points, 1) // all activity today
	assert.Equal(t, 30, points[0].Inbound)
	assert.Equal(t, 12, points[0].Outbound)
}

func TestDashboardRecentActivity(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	product := seedProduct(t, db, 1000, 10)

	inv := newInventoryService(db)
	for i := 0; i < 5; i++ {
		_, err := inv.RecordTransaction(user.ID, &model.TransactionRequest{
			ProductID: product.ID,
			Type:      model.TxStockIn,
			Quantity:  1,
		})
		require.NoError(t, err)
	}

	svc := newDashboardService(db)
	transactions, err := svc.RecentActivity(3)
	require.NoError(t, err)
	assert.Len(t, transactions, 3)
}
