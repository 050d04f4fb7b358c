package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"
	"go-stockpilot/pkg/qrcode"
	"go-stockpilot/pkg/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// LowStockResult is the shape of the low-stock overview endpoint.
type LowStockResult struct {
	LowStock        []model.Product `json:"low_stock"`
	OutOfStock      []model.Product `json:"out_of_stock"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
}

type ProductService interface {
	Create(userID uuid.UUID, req *model.ProductRequest) (*model.Product, error)
	Update(userID, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)
	List(f repository.ProductFilter) ([]model.Product, repository.Pagination, error)
	Get(id uuid.UUID) (*model.Product, error)
	Delete(id uuid.UUID) error
	LowStock() (*LowStockResult, error)
	Stats() (*repository.ProductStats, error)
	QRCode(id uuid.UUID) (string, *model.Product, error)
}

type productService struct {
	repo        repository.ProductRepository
	notifier    NotificationService
	frontendURL string
	log         zerolog.Logger
}

func NewProductService(repo repository.ProductRepository, notifier NotificationService, frontendURL string, log zerolog.Logger) ProductService {
	return &productService{
		repo:        repo,
		notifier:    notifier,
		frontendURL: frontendURL,
		log:         log,
	}
}

// generateSKU builds a unique fallback SKU for products created without one.
func generateSKU() string {
	buf := make([]byte, 3)
	_, _ = rand.Read(buf)
	return strings.ToUpper(fmt.Sprintf("PRD-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(buf)))
}

func (s *productService) Create(userID uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		sku = generateSKU()
	}

	if existing, err := s.repo.FindBySKU(sku); err == nil && existing.ID != uuid.Nil {
		return nil, apperr.DuplicateValue("A product with this SKU already exists")
	}

	product := &model.Product{
		SKU:         sku,
		Name:        req.Name,
		Description: req.Description,
		Barcode:     req.Barcode,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
		IsActive:    true,
	}
	if product.Unit == "" {
		product.Unit = "pcs"
	}
	product.MinStockLevel = 10
	if req.MinStockLevel != nil {
		product.MinStockLevel = *req.MinStockLevel
	}
	product.ReorderPoint = 10
	if req.ReorderPoint != nil {
		product.ReorderPoint = *req.ReorderPoint
	}
	product.ReorderQty = 50
	if req.ReorderQty != nil {
		product.ReorderQty = *req.ReorderQty
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	// A product created at or below its minimum immediately alerts.
	s.notifier.NotifyStockLevel(userID, product, "product creation")

	product.ApplyDerivedFields()
	return product, nil
}

func (s *productService) Update(userID, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ProductNotFound()
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, apperr.ProductNotFound()
	}

	quantityChanged := req.Quantity != product.Quantity

	if sku := strings.TrimSpace(req.SKU); sku != "" && sku != product.SKU {
		if existing, err := s.repo.FindBySKU(sku); err == nil && existing.ID != product.ID {
			return nil, apperr.DuplicateValue("A product with this SKU already exists")
		}
		product.SKU = sku
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Barcode = req.Barcode
	product.Quantity = req.Quantity
	product.UnitPrice = req.UnitPrice
	product.ImageURL = req.ImageURL
	product.CategoryID = req.CategoryID
	product.SupplierID = req.SupplierID
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	if req.MinStockLevel != nil {
		product.MinStockLevel = *req.MinStockLevel
	}
	if req.ReorderPoint != nil {
		product.ReorderPoint = *req.ReorderPoint
	}
	if req.ReorderQty != nil {
		product.ReorderQty = *req.ReorderQty
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	if quantityChanged {
		s.notifier.NotifyStockLevel(userID, product, "product update")
	}

	product.ApplyDerivedFields()
	return product, nil
}

func (s *productService) List(f repository.ProductFilter) ([]model.Product, repository.Pagination, error) {
	f.Normalize(20)
	products, total, err := s.repo.List(f)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	for i := range products {
		products[i].ApplyDerivedFields()
	}
	return products, repository.NewPagination(f.Page, f.Limit, total), nil
}

func (s *productService) Get(id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ProductNotFound()
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, apperr.ProductNotFound()
	}
	product.ApplyDerivedFields()
	return product, nil
}

func (s *productService) Delete(id uuid.UUID) error {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ProductNotFound()
		}
		return err
	}
	if !product.IsActive {
		return apperr.ProductNotFound()
	}
	return s.repo.SoftDelete(id)
}

func (s *productService) LowStock() (*LowStockResult, error) {
	low, out, err := s.repo.LowStock()
	if err != nil {
		return nil, err
	}
	for i := range low {
		low[i].ApplyDerivedFields()
	}
	for i := range out {
		out[i].ApplyDerivedFields()
	}
	return &LowStockResult{
		LowStock:        low,
		OutOfStock:      out,
		LowStockCount:   len(low),
		OutOfStockCount: len(out),
	}, nil
}

func (s *productService) Stats() (*repository.ProductStats, error) {
	return s.repo.Stats()
}

// QRCode renders the product identity as a PNG data URL.
func (s *productService) QRCode(id uuid.UUID) (string, *model.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.ProductNotFound()
		}
		return "", nil, err
	}

	dataURL, err := qrcode.EncodeDataURL(qrcode.Payload{
		ID:       product.ID.String(),
		SKU:      product.SKU,
		Name:     product.Name,
		Quantity: product.Quantity,
		Price:    product.UnitPrice,
		URL:      fmt.Sprintf("%s/products/%s", s.frontendURL, product.ID),
	})
	if err != nil {
		return "", nil, err
	}
	return dataURL, product, nil
}
