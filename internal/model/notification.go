package model

import "github.com/google/uuid"

type NotificationType string

const (
	NotifLowStock     NotificationType = "low_stock"
	NotifOutOfStock   NotificationType = "out_of_stock"
	NotifReorderPoint NotificationType = "reorder_point"
	NotifPOUpdate     NotificationType = "po_update"
	NotifSystem       NotificationType = "system"
)

// Notification is a per-user alert created as a side effect of inventory
// events. Rows are append-only; only the Read flag ever changes.
type Notification struct {
	BaseModel
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title     string           `gorm:"type:varchar(200);not null" json:"title"`
	Message   string           `gorm:"type:varchar(1000);not null" json:"message"`
	ProductID *uuid.UUID       `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Read      bool             `gorm:"default:false" json:"read"`
	Link      string           `gorm:"type:varchar(300)" json:"link"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
