package repository

import (
	"go-stockpilot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	List(q ListQuery) ([]model.Supplier, int64, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	SoftDelete(id uuid.UUID) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) List(q ListQuery) ([]model.Supplier, int64, error) {
	q.Normalize(50)

	query := r.db.Model(&model.Supplier{}).Where("is_active = ?", true)
	if q.Search != "" {
		pattern := searchPattern(q.Search)
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(company) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var suppliers []model.Supplier
	err := query.
		Order("name ASC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&suppliers).Error
	if err != nil {
		return nil, 0, err
	}

	for i := range suppliers {
		var count int64
		if err := r.db.Model(&model.Product{}).
			Where("supplier_id = ? AND is_active = ?", suppliers[i].ID, true).
			Count(&count).Error; err != nil {
			return nil, 0, err
		}
		suppliers[i].ProductCount = count
	}

	return suppliers, total, nil
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.
		Preload("Products", "is_active = ?", true).
		First(&supplier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	var count int64
	if err := r.db.Model(&model.Product{}).
		Where("supplier_id = ? AND is_active = ?", id, true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	supplier.ProductCount = count
	return &supplier, nil
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Omit(clause.Associations).Save(supplier).Error
}

// SoftDelete marks the supplier inactive, preserving PO history.
func (r *supplierRepo) SoftDelete(id uuid.UUID) error {
	return r.db.Model(&model.Supplier{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
