package model

// Supplier is a replenishment source for products. Suppliers are soft-deleted
// via IsActive so historic purchase orders keep their reference.
type Supplier struct {
	BaseModel
	Name         string  `gorm:"type:varchar(200);not null" json:"name" validate:"required,min=2,max=200"`
	Contact      string  `gorm:"type:varchar(200)" json:"contact"`
	Company      string  `gorm:"type:varchar(200)" json:"company"`
	Email        string  `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone        string  `gorm:"type:varchar(20)" json:"phone"`
	Address      string  `gorm:"type:varchar(500)" json:"address"`
	PaymentTerms string  `gorm:"type:varchar(200)" json:"payment_terms"`
	LeadTimeDays int     `gorm:"default:7" json:"lead_time_days" validate:"omitempty,min=0"`
	Rating       float64 `gorm:"default:0" json:"rating" validate:"omitempty,min=0,max=5"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`

	Products       []Product       `gorm:"foreignKey:SupplierID" json:"products,omitempty"`
	PurchaseOrders []PurchaseOrder `gorm:"foreignKey:SupplierID" json:"purchase_orders,omitempty"`

	ProductCount int64 `gorm:"-" json:"product_count"`
}
