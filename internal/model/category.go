package model

import "github.com/google/uuid"

// Category groups products. Categories form a tree via ParentID and are
// hard-deleted, but deletion is blocked while any product references them,
// soft-deleted products included.
type Category struct {
	BaseModel
	Name        string     `gorm:"type:varchar(100);not null" json:"name" validate:"required,min=2,max=100"`
	Description string     `gorm:"type:varchar(500)" json:"description"`
	Color       string     `gorm:"type:varchar(7)" json:"color" validate:"omitempty,hexcolor"`
	Icon        string     `gorm:"type:varchar(50)" json:"icon"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`

	Parent   *Category  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Products []Product  `gorm:"foreignKey:CategoryID" json:"products,omitempty"`

	// Populated on detail/list reads, not stored.
	ProductCount int64 `gorm:"-" json:"product_count"`
}
