package repository

import (
	"go-stockpilot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	List(q ListQuery) ([]model.Category, int64, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id uuid.UUID) error
	CountProducts(id uuid.UUID) (int64, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

var categorySortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) List(q ListQuery) ([]model.Category, int64, error) {
	q.Normalize(50)

	query := r.db.Model(&model.Category{})
	if q.Search != "" {
		pattern := searchPattern(q.Search)
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	err := query.
		Order(orderClause(q.SortBy, q.SortOrder, categorySortColumns, "name")).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}

	for i := range categories {
		count, err := r.CountProducts(categories[i].ID)
		if err != nil {
			return nil, 0, err
		}
		categories[i].ProductCount = count
	}

	return categories, total, nil
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.
		Preload("Products", "is_active = ?", true).
		Preload("Children").
		First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	count, err := r.CountProducts(id)
	if err != nil {
		return nil, err
	}
	category.ProductCount = count
	return &category, nil
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Omit(clause.Associations).Save(category).Error
}

func (r *categoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Category{}, "id = ?", id).Error
}

// CountProducts counts every product referencing the category, soft-deleted
// ones included. Inactive products keep their category_id for ledger history,
// so they must keep blocking deletion too.
func (r *categoryRepo) CountProducts(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).
		Where("category_id = ?", id).
		Count(&count).Error
	return count, err
}
