package model

import "github.com/google/uuid"

type TransactionType string

const (
	TxStockIn    TransactionType = "stock_in"
	TxStockOut   TransactionType = "stock_out"
	TxAdjustment TransactionType = "adjustment"
	TxReturn     TransactionType = "return"
	TxDamage     TransactionType = "damage"
)

// Additive reports whether the type increases stock. Adjustment is neither:
// it sets the quantity absolutely.
func (t TransactionType) Additive() bool {
	return t == TxStockIn || t == TxReturn
}

// Subtractive reports whether the type decreases stock.
func (t TransactionType) Subtractive() bool {
	return t == TxStockOut || t == TxDamage
}

// Transaction is an immutable ledger entry for a stock quantity change.
// BeforeQty/AfterQty snapshot the product quantity around the mutation;
// AfterQty always equals Product.Quantity at the instant the row is written.
type Transaction struct {
	BaseModel
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	BeforeQty   int             `gorm:"not null" json:"before_qty"`
	AfterQty    int             `gorm:"not null" json:"after_qty"`
	UnitPrice   float64         `gorm:"default:0" json:"unit_price"`
	TotalValue  float64         `gorm:"default:0" json:"total_value"`
	Notes       string          `gorm:"type:varchar(500)" json:"notes"`
	ReferenceNo string          `gorm:"type:varchar(100)" json:"reference_no"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
