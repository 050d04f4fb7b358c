package repository

import (
	"errors"

	"go-stockpilot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStatusConflict signals that a conditional status update matched no row:
// the order's status changed underneath the caller.
var ErrStatusConflict = errors.New("purchase order status changed concurrently")

// PurchaseOrderFilter narrows the PO listing.
type PurchaseOrderFilter struct {
	ListQuery
	Status string
}

type PurchaseOrderRepository interface {
	Create(po *model.PurchaseOrder) error
	List(f PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error)
	FindByID(id uuid.UUID) (*model.PurchaseOrder, error)
	UpdateStatus(tx *gorm.DB, po *model.PurchaseOrder, from model.PurchaseOrderStatus) error
	CountByStatus(status model.PurchaseOrderStatus) (int64, error)
}

type purchaseOrderRepo struct {
	db *gorm.DB
}

func NewPurchaseOrderRepo(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db}
}

func (r *purchaseOrderRepo) Create(po *model.PurchaseOrder) error {
	return r.db.Create(po).Error
}

func (r *purchaseOrderRepo) List(f PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error) {
	f.Normalize(50)

	query := r.db.Model(&model.PurchaseOrder{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.PurchaseOrder
	err := query.
		Preload("Product").
		Preload("Supplier").
		Preload("User").
		Order("created_at DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *purchaseOrderRepo) FindByID(id uuid.UUID) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.
		Preload("Product").
		Preload("Supplier").
		Preload("User").
		First(&po, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &po, nil
}

// UpdateStatus persists the status fields inside the caller's transaction so
// a delivery commits together with its stock side effects. The update is
// conditional on the status the caller read; if another writer moved the
// order in the meantime, no row matches and ErrStatusConflict is returned.
func (r *purchaseOrderRepo) UpdateStatus(tx *gorm.DB, po *model.PurchaseOrder, from model.PurchaseOrderStatus) error {
	res := tx.Model(&model.PurchaseOrder{}).
		Where("id = ? AND status = ?", po.ID, from).
		Updates(map[string]interface{}{
			"status":         po.Status,
			"delivered_date": po.DeliveredDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *purchaseOrderRepo) CountByStatus(status model.PurchaseOrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.PurchaseOrder{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
