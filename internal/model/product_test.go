package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStockStatus(t *testing.T) {
	p := Product{Quantity: 0, MinStockLevel: 10}
	assert.Equal(t, StockStatusOut, p.DeriveStockStatus())

	p = Product{Quantity: 10, MinStockLevel: 10}
	assert.Equal(t, StockStatusLow, p.DeriveStockStatus())

	p = Product{Quantity: 11, MinStockLevel: 10}
	assert.Equal(t, StockStatusIn, p.DeriveStockStatus())

	// A product with a custom minimum above the fixed list threshold is low
	// on its detail view while the list filter would call it in stock.
	p = Product{Quantity: 60, MinStockLevel: 75}
	assert.Equal(t, StockStatusLow, p.DeriveStockStatus())
	assert.Greater(t, p.Quantity, ListLowStockThreshold)
}

func TestApplyDerivedFields(t *testing.T) {
	p := Product{Quantity: 8, MinStockLevel: 10, ReorderPoint: 10}
	p.ApplyDerivedFields()
	assert.Equal(t, StockStatusLow, p.StockStatus)
	assert.True(t, p.NeedsReorder)

	p = Product{Quantity: 80, MinStockLevel: 10, ReorderPoint: 10}
	p.ApplyDerivedFields()
	assert.Equal(t, StockStatusIn, p.StockStatus)
	assert.False(t, p.NeedsReorder)
}

func TestTransactionTypeDirection(t *testing.T) {
	assert.True(t, TxStockIn.Additive())
	assert.True(t, TxReturn.Additive())
	assert.True(t, TxStockOut.Subtractive())
	assert.True(t, TxDamage.Subtractive())
	assert.False(t, TxAdjustment.Additive())
	assert.False(t, TxAdjustment.Subtractive())
}
