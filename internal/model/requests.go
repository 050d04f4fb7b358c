package model

import (
	"time"

	"github.com/google/uuid"
)

// Typed request DTOs, one per mutating endpoint. The validation layer decodes
// and checks these before any handler logic runs.

type SignupRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=100"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6,max=50"`
	Role     UserRole `json:"role" validate:"omitempty,oneof=admin user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UpdateUserRequest struct {
	Name     *string   `json:"name" validate:"omitempty,min=2,max=100"`
	Email    *string   `json:"email" validate:"omitempty,email"`
	Password *string   `json:"password" validate:"omitempty,min=6,max=50"`
	Role     *UserRole `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive *bool     `json:"is_active"`
}

type ProductRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=200"`
	SKU           string     `json:"sku" validate:"omitempty,max=50"`
	Description   string     `json:"description" validate:"omitempty,max=1000"`
	Barcode       string     `json:"barcode" validate:"omitempty,max=100"`
	Quantity      int        `json:"quantity" validate:"min=0"`
	Unit          string     `json:"unit" validate:"omitempty,max=20"`
	UnitPrice     float64    `json:"unit_price" validate:"required,gt=0"`
	MinStockLevel *int       `json:"min_stock_level" validate:"omitempty,min=0"`
	ReorderPoint  *int       `json:"reorder_point" validate:"omitempty,min=0"`
	ReorderQty    *int       `json:"reorder_quantity" validate:"omitempty,min=1"`
	ImageURL      string     `json:"image_url" validate:"omitempty,url"`
	CategoryID    *uuid.UUID `json:"category_id"`
	SupplierID    *uuid.UUID `json:"supplier_id"`
}

type StockUpdateRequest struct {
	Quantity  int    `json:"quantity" validate:"min=0"`
	Operation string `json:"operation" validate:"omitempty,oneof=add subtract set"`
	Notes     string `json:"notes" validate:"omitempty,max=500"`
}

type TransactionRequest struct {
	ProductID   uuid.UUID       `json:"product_id" validate:"uuid_required"`
	Type        TransactionType `json:"type" validate:"required,oneof=stock_in stock_out adjustment return damage"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	UnitPrice   *float64        `json:"unit_price" validate:"omitempty,gt=0"`
	Notes       string          `json:"notes" validate:"omitempty,max=500"`
	ReferenceNo string          `json:"reference_no" validate:"omitempty,max=100"`
}

type CategoryRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=100"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	Color       string     `json:"color" validate:"omitempty,hexcolor"`
	Icon        string     `json:"icon" validate:"omitempty,max=50"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

type SupplierRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=200"`
	Contact      string  `json:"contact" validate:"omitempty,max=200"`
	Company      string  `json:"company" validate:"omitempty,max=200"`
	Email        string  `json:"email" validate:"omitempty,email"`
	Phone        string  `json:"phone" validate:"omitempty,max=20"`
	Address      string  `json:"address" validate:"omitempty,max=500"`
	PaymentTerms string  `json:"payment_terms" validate:"omitempty,max=200"`
	LeadTimeDays *int    `json:"lead_time_days" validate:"omitempty,min=0"`
	Rating       float64 `json:"rating" validate:"omitempty,min=0,max=5"`
}

type PurchaseOrderRequest struct {
	ProductID    uuid.UUID  `json:"product_id" validate:"uuid_required"`
	SupplierID   uuid.UUID  `json:"supplier_id" validate:"uuid_required"`
	Quantity     int        `json:"quantity" validate:"required,min=1"`
	UnitPrice    float64    `json:"unit_price" validate:"required,gt=0"`
	ExpectedDate *time.Time `json:"expected_date"`
	Notes        string     `json:"notes" validate:"omitempty,max=500"`
}

type POStatusRequest struct {
	Status PurchaseOrderStatus `json:"status" validate:"required"`
}
