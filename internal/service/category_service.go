package service

import (
	"errors"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"
	"go-stockpilot/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService interface {
	Create(req *model.CategoryRequest) (*model.Category, error)
	Update(id uuid.UUID, req *model.CategoryRequest) (*model.Category, error)
	List(q repository.ListQuery) ([]model.Category, repository.Pagination, error)
	Get(id uuid.UUID) (*model.Category, error)
	Delete(id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(req *model.CategoryRequest) (*model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		ParentID:    req.ParentID,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(id uuid.UUID, req *model.CategoryRequest) (*model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.CategoryNotFound()
		}
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Color = req.Color
	category.Icon = req.Icon
	category.ParentID = req.ParentID

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(q repository.ListQuery) ([]model.Category, repository.Pagination, error) {
	q.Normalize(50)
	categories, total, err := s.repo.List(q)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	return categories, repository.NewPagination(q.Page, q.Limit, total), nil
}

func (s *categoryService) Get(id uuid.UUID) (*model.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.CategoryNotFound()
		}
		return nil, err
	}
	return category, nil
}

// Delete hard-deletes the category, but only when no product references it.
// Soft-deleted products count: they keep their category_id for history.
func (s *categoryService) Delete(id uuid.UUID) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.CategoryNotFound()
		}
		return err
	}

	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.CategoryHasProducts()
	}

	return s.repo.Delete(id)
}
