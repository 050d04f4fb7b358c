package model

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseOrderStatus string

const (
	POStatusPending   PurchaseOrderStatus = "pending"
	POStatusApproved  PurchaseOrderStatus = "approved"
	POStatusDelivered PurchaseOrderStatus = "delivered"
	POStatusCancelled PurchaseOrderStatus = "cancelled"
)

// Valid reports whether the value is one of the four known statuses.
func (s PurchaseOrderStatus) Valid() bool {
	switch s {
	case POStatusPending, POStatusApproved, POStatusDelivered, POStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the one-directional lifecycle:
// pending -> approved -> delivered, with cancellation as the escape valve
// before delivery. Delivery requires prior approval; delivered and cancelled
// are terminal.
func (s PurchaseOrderStatus) CanTransitionTo(next PurchaseOrderStatus) bool {
	switch s {
	case POStatusPending:
		return next == POStatusApproved || next == POStatusCancelled
	case POStatusApproved:
		return next == POStatusDelivered || next == POStatusCancelled
	default:
		return false
	}
}

// PurchaseOrder tracks a replenishment request through its status lifecycle.
// TotalAmount is computed once at creation (quantity x unit price) and never
// recomputed afterwards.
type PurchaseOrder struct {
	BaseModel
	OrderNumber   string              `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`
	ProductID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"product_id"`
	SupplierID    uuid.UUID           `gorm:"type:uuid;not null;index" json:"supplier_id"`
	UserID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	Quantity      int                 `gorm:"not null" json:"quantity"`
	UnitPrice     float64             `gorm:"not null" json:"unit_price"`
	TotalAmount   float64             `gorm:"not null" json:"total_amount"`
	Status        PurchaseOrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ExpectedDate  *time.Time          `json:"expected_date,omitempty"`
	DeliveredDate *time.Time          `json:"delivered_date,omitempty"`
	Notes         string              `gorm:"type:varchar(500)" json:"notes"`

	Product  *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
