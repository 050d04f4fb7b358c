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

type SupplierService interface {
	Create(req *model.SupplierRequest) (*model.Supplier, error)
	Update(id uuid.UUID, req *model.SupplierRequest) (*model.Supplier, error)
	List(q repository.ListQuery) ([]model.Supplier, repository.Pagination, error)
	Get(id uuid.UUID) (*model.Supplier, error)
	Delete(id uuid.UUID) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(req *model.SupplierRequest) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	supplier := &model.Supplier{
		Name:         req.Name,
		Contact:      req.Contact,
		Company:      req.Company,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PaymentTerms: req.PaymentTerms,
		LeadTimeDays: 7,
		Rating:       req.Rating,
		IsActive:     true,
	}
	if req.LeadTimeDays != nil {
		supplier.LeadTimeDays = *req.LeadTimeDays
	}

	if err := s.repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Update(id uuid.UUID, req *model.SupplierRequest) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	supplier, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.SupplierNotFound()
		}
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Contact = req.Contact
	supplier.Company = req.Company
	supplier.Email = req.Email
	supplier.Phone = req.Phone
	supplier.Address = req.Address
	supplier.PaymentTerms = req.PaymentTerms
	supplier.Rating = req.Rating
	if req.LeadTimeDays != nil {
		supplier.LeadTimeDays = *req.LeadTimeDays
	}

	if err := s.repo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) List(q repository.ListQuery) ([]model.Supplier, repository.Pagination, error) {
	q.Normalize(50)
	suppliers, total, err := s.repo.List(q)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	return suppliers, repository.NewPagination(q.Page, q.Limit, total), nil
}

func (s *supplierService) Get(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.SupplierNotFound()
		}
		return nil, err
	}
	return supplier, nil
}

// Delete soft-deletes: historic transactions and purchase orders keep their
// supplier reference.
func (s *supplierService) Delete(id uuid.UUID) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.SupplierNotFound()
		}
		return err
	}
	return s.repo.SoftDelete(id)
}
