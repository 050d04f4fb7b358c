package model

import "github.com/google/uuid"

type StockStatus string

const (
	StockStatusIn  StockStatus = "in_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusOut StockStatus = "out_of_stock"
)

// ListLowStockThreshold is the fixed quantity cutoff used by the product list
// status filter, the low-stock query and product stats. It deliberately
// differs from the per-product MinStockLevel comparison used by the detail
// view and notifications; the product owner has been asked whether the split
// is intentional tiering or drift, so do not unify the two.
const ListLowStockThreshold = 50

type Product struct {
	BaseModel
	SKU           string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`
	Name          string     `gorm:"type:varchar(200);not null" json:"name" validate:"required,min=2,max=200"`
	Description   string     `gorm:"type:varchar(1000)" json:"description"`
	Barcode       string     `gorm:"type:varchar(100)" json:"barcode"`
	Quantity      int        `gorm:"not null;default:0" json:"quantity" validate:"min=0"`
	Unit          string     `gorm:"type:varchar(20);default:'pcs'" json:"unit"`
	UnitPrice     float64    `gorm:"not null;default:0" json:"unit_price" validate:"min=0"`
	MinStockLevel int        `gorm:"default:10" json:"min_stock_level" validate:"omitempty,min=0"`
	ReorderPoint  int        `gorm:"default:10" json:"reorder_point" validate:"omitempty,min=0"`
	ReorderQty    int        `gorm:"default:50" json:"reorder_quantity" validate:"omitempty,min=1"`
	ImageURL      string     `gorm:"type:varchar(500)" json:"image_url"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	SupplierID    *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`

	Transactions   []Transaction   `gorm:"foreignKey:ProductID" json:"transactions,omitempty"`
	PurchaseOrders []PurchaseOrder `gorm:"foreignKey:ProductID" json:"purchase_orders,omitempty"`

	// Derived at read time, never persisted.
	StockStatus  StockStatus `gorm:"-" json:"stock_status,omitempty"`
	NeedsReorder bool        `gorm:"-" json:"needs_reorder"`
}

// DeriveStockStatus computes the per-product status using MinStockLevel.
// Used by detail views, stats and the notification threshold.
func (p *Product) DeriveStockStatus() StockStatus {
	switch {
	case p.Quantity == 0:
		return StockStatusOut
	case p.Quantity <= p.MinStockLevel:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// ApplyDerivedFields fills the non-persisted fields before returning the
// product to a client.
func (p *Product) ApplyDerivedFields() {
	p.StockStatus = p.DeriveStockStatus()
	p.NeedsReorder = p.Quantity <= p.ReorderPoint
}
