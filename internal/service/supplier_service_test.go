package service

import (
	"testing"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierDefaultsLeadTime(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	supplier, err := svc.Create(&model.SupplierRequest{Name: "Acme Wholesale"})
	require.NoError(t, err)
	assert.Equal(t, 7, supplier.LeadTimeDays)
	assert.True(t, supplier.IsActive)
}

func TestSupplierDeleteIsSoft(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	supplier, err := svc.Create(&model.SupplierRequest{Name: "Acme Wholesale"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(supplier.ID))

	var reloaded model.Supplier
	require.NoError(t, db.First(&reloaded, "id = ?", supplier.ID).Error)
	assert.False(t, reloaded.IsActive)

	// Hidden from the listing.
	suppliers, _, err := svc.List(repository.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, suppliers)
}

func TestSupplierNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	_, err := svc.Get(uuid.New())
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "SUPPLIER_NOT_FOUND", appErr.Code)
}

func TestSupplierSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	_, err := svc.Create(&model.SupplierRequest{Name: "Northwind Traders", Company: "Northwind"})
	require.NoError(t, err)
	_, err = svc.Create(&model.SupplierRequest{Name: "Acme Wholesale", Company: "Acme Corp"})
	require.NoError(t, err)

	suppliers, pagination, err := svc.List(repository.ListQuery{Search: "northwind"})
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "Northwind Traders", suppliers[0].Name)
	assert.Equal(t, int64(1), pagination.Total)
}
