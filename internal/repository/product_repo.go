package repository

import (
	"go-stockpilot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductFilter narrows the product listing.
type ProductFilter struct {
	ListQuery
	CategoryID *uuid.UUID
	SupplierID *uuid.UUID
	Status     string // in_stock | low_stock | out_of_stock
}

// ProductStats is the aggregate view for the stats endpoint. The low/out
// counts use the fixed list threshold, not per-product MinStockLevel.
type ProductStats struct {
	TotalProducts       int64   `json:"total_products"`
	LowStockCount       int64   `json:"low_stock_count"`
	OutOfStockCount     int64   `json:"out_of_stock_count"`
	InStockCount        int64   `json:"in_stock_count"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	TotalQuantity       int64   `json:"total_quantity"`
}

type ProductRepository interface {
	Create(product *model.Product) error
	List(f ProductFilter) ([]model.Product, int64, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error
	SoftDelete(id uuid.UUID) error
	LowStock() ([]model.Product, []model.Product, error)
	Stats() (*ProductStats, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

var productSortColumns = map[string]string{
	"name":       "name",
	"sku":        "sku",
	"quantity":   "quantity",
	"unit_price": "unit_price",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) List(f ProductFilter) ([]model.Product, int64, error) {
	f.Normalize(20)

	query := r.db.Model(&model.Product{}).Where("is_active = ?", true)

	if f.Search != "" {
		pattern := searchPattern(f.Search)
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if f.CategoryID != nil {
		query = query.Where("category_id = ?", *f.CategoryID)
	}
	if f.SupplierID != nil {
		query = query.Where("supplier_id = ?", *f.SupplierID)
	}

	// The status filter uses the fixed list threshold; see
	// model.ListLowStockThreshold for why this differs from MinStockLevel.
	switch f.Status {
	case string(model.StockStatusOut):
		query = query.Where("quantity = 0")
	case string(model.StockStatusLow):
		query = query.Where("quantity > 0 AND quantity <= ?", model.ListLowStockThreshold)
	case string(model.StockStatusIn):
		query = query.Where("quantity > ?", model.ListLowStockThreshold)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := query.
		Preload("Category").
		Preload("Supplier").
		Order(orderClause(f.SortBy, f.SortOrder, productSortColumns, "created_at")).
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.
		Preload("Category").
		Preload("Supplier").
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(10)
		}).
		Preload("Transactions.User").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDForUpdate loads the product inside tx with a row lock on dialects
// that support it, so concurrent stock mutations serialize on the row.
func (r *productRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var product model.Product
	err := tx.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update persists the product's own columns only; preloaded associations are
// never written back.
func (r *productRepo) Update(product *model.Product) error {
	return r.db.Omit(clause.Associations).Save(product).Error
}

// UpdateQuantity runs inside the caller's transaction so the quantity change
// commits or rolls back together with its ledger entry.
func (r *productRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *productRepo) SoftDelete(id uuid.UUID) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// LowStock returns (low, out) product slices using the fixed list threshold.
func (r *productRepo) LowStock() ([]model.Product, []model.Product, error) {
	var low []model.Product
	err := r.db.
		Where("is_active = ? AND quantity > 0 AND quantity <= ?", true, model.ListLowStockThreshold).
		Preload("Category").
		Preload("Supplier").
		Order("quantity ASC").
		Find(&low).Error
	if err != nil {
		return nil, nil, err
	}

	var out []model.Product
	err = r.db.
		Where("is_active = ? AND quantity = 0", true).
		Preload("Category").
		Preload("Supplier").
		Find(&out).Error
	if err != nil {
		return nil, nil, err
	}

	return low, out, nil
}

func (r *productRepo) Stats() (*ProductStats, error) {
	var stats ProductStats
	active := func() *gorm.DB {
		return r.db.Model(&model.Product{}).Where("is_active = ?", true)
	}

	if err := active().Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := active().
		Where("quantity > 0 AND quantity <= ?", model.ListLowStockThreshold).
		Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := active().Where("quantity = 0").Count(&stats.OutOfStockCount).Error; err != nil {
		return nil, err
	}
	stats.InStockCount = stats.TotalProducts - stats.LowStockCount - stats.OutOfStockCount

	if err := active().
		Select("COALESCE(SUM(unit_price * quantity), 0)").
		Scan(&stats.TotalInventoryValue).Error; err != nil {
		return nil, err
	}
	if err := active().
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&stats.TotalQuantity).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
