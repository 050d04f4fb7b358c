package service

import (
	"errors"
	"fmt"
	"time"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"
	"go-stockpilot/pkg/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// StockUpdateResult reports a direct stock set back to the caller.
type StockUpdateResult struct {
	Product          *model.Product `json:"product"`
	PreviousQuantity int            `json:"previous_quantity"`
	NewQuantity      int            `json:"new_quantity"`
	Operation        string         `json:"operation"`
}

type InventoryService interface {
	RecordTransaction(userID uuid.UUID, req *model.TransactionRequest) (*model.Transaction, error)
	UpdateProductStock(userID, productID uuid.UUID, req *model.StockUpdateRequest) (*StockUpdateResult, error)
	ListTransactions(f repository.TransactionFilter) ([]model.Transaction, repository.Pagination, error)
	GetTransaction(id uuid.UUID) (*model.Transaction, error)
	ProductTransactions(productID uuid.UUID) ([]model.Transaction, error)
	TransactionStats(startDate, endDate *time.Time) (*repository.TransactionStats, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	notifier    NotificationService
	db          *gorm.DB
	hub         Publisher
	log         zerolog.Logger
}

func NewInventoryService(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	notifier NotificationService,
	db *gorm.DB,
	hub Publisher,
	log zerolog.Logger,
) InventoryService {
	return &inventoryService{
		productRepo: productRepo,
		txRepo:      txRepo,
		notifier:    notifier,
		db:          db,
		hub:         hub,
		log:         log,
	}
}

// RecordTransaction applies a stock quantity change and writes its ledger
// entry as one atomic unit. The product row is locked for the duration so
// two simultaneous stock_out calls cannot race past the insufficient check.
func (s *inventoryService) RecordTransaction(userID uuid.UUID, req *model.TransactionRequest) (*model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	var entry *model.Transaction
	var snapshot model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDForUpdate(tx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ProductNotFound()
			}
			return err
		}
		if !product.IsActive {
			return apperr.ProductNotFound()
		}

		beforeQty := product.Quantity
		afterQty := beforeQty

		switch {
		case req.Type.Additive():
			afterQty = beforeQty + req.Quantity
		case req.Type.Subtractive():
			if beforeQty < req.Quantity {
				return apperr.InsufficientStock()
			}
			afterQty = beforeQty - req.Quantity
		case req.Type == model.TxAdjustment:
			afterQty = req.Quantity // absolute set, not a delta
		}

		unitPrice := product.UnitPrice
		if req.UnitPrice != nil {
			unitPrice = *req.UnitPrice
		}

		if err := s.productRepo.UpdateQuantity(tx, product.ID, afterQty); err != nil {
			return err
		}

		entry = &model.Transaction{
			ProductID:   product.ID,
			UserID:      userID,
			Type:        req.Type,
			Quantity:    req.Quantity,
			BeforeQty:   beforeQty,
			AfterQty:    afterQty,
			UnitPrice:   unitPrice,
			TotalValue:  unitPrice * float64(req.Quantity),
			Notes:       req.Notes,
			ReferenceNo: req.ReferenceNo,
		}
		if err := s.txRepo.Create(tx, entry); err != nil {
			return err
		}

		snapshot = *product
		snapshot.Quantity = afterQty
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Post-commit side effects only: a notification failure must not undo
	// the mutation, and the broadcast must not fire on rollback.
	s.notifier.NotifyStockLevel(userID, &snapshot, fmt.Sprintf("%s transaction", req.Type))
	if s.hub != nil {
		s.hub.Publish("stock_update", map[string]interface{}{
			"product_id":   snapshot.ID,
			"sku":          snapshot.SKU,
			"type":         req.Type,
			"quantity":     req.Quantity,
			"new_quantity": snapshot.Quantity,
		})
	}

	return entry, nil
}

// UpdateProductStock is the direct stock adjustment entry point
// (PATCH /products/:id/stock). It shares the ledger flow's atomicity and
// writes an equivalent audit Transaction; subtract clamps at zero.
func (s *inventoryService) UpdateProductStock(userID, productID uuid.UUID, req *model.StockUpdateRequest) (*StockUpdateResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	operation := req.Operation
	if operation == "" {
		operation = "set"
	}

	var result StockUpdateResult
	var snapshot model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDForUpdate(tx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ProductNotFound()
			}
			return err
		}
		if !product.IsActive {
			return apperr.ProductNotFound()
		}

		beforeQty := product.Quantity
		var afterQty int
		var txType model.TransactionType

		switch operation {
		case "add":
			afterQty = beforeQty + req.Quantity
			txType = model.TxStockIn
		case "subtract":
			afterQty = beforeQty - req.Quantity
			if afterQty < 0 {
				afterQty = 0
			}
			txType = model.TxStockOut
		default: // set
			afterQty = req.Quantity
			txType = model.TxStockOut
			if afterQty > beforeQty {
				txType = model.TxStockIn
			}
		}

		if err := s.productRepo.UpdateQuantity(tx, product.ID, afterQty); err != nil {
			return err
		}

		notes := req.Notes
		if notes == "" {
			notes = fmt.Sprintf("Stock %s operation", operation)
		}

		delta := afterQty - beforeQty
		if delta < 0 {
			delta = -delta
		}

		entry := &model.Transaction{
			ProductID:   product.ID,
			UserID:      userID,
			Type:        txType,
			Quantity:    delta,
			BeforeQty:   beforeQty,
			AfterQty:    afterQty,
			UnitPrice:   product.UnitPrice,
			TotalValue:  product.UnitPrice * float64(delta),
			Notes:       notes,
			ReferenceNo: fmt.Sprintf("STOCK-%d", time.Now().UnixMilli()),
		}
		if err := s.txRepo.Create(tx, entry); err != nil {
			return err
		}

		snapshot = *product
		snapshot.Quantity = afterQty
		result = StockUpdateResult{
			PreviousQuantity: beforeQty,
			NewQuantity:      afterQty,
			Operation:        operation,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyStockLevel(userID, &snapshot, fmt.Sprintf("stock %s operation", operation))
	if s.hub != nil {
		s.hub.Publish("stock_update", map[string]interface{}{
			"product_id":   snapshot.ID,
			"sku":          snapshot.SKU,
			"operation":    operation,
			"new_quantity": snapshot.Quantity,
		})
	}

	snapshot.ApplyDerivedFields()
	result.Product = &snapshot
	return &result, nil
}

func (s *inventoryService) ListTransactions(f repository.TransactionFilter) ([]model.Transaction, repository.Pagination, error) {
	f.Normalize(50)
	transactions, total, err := s.txRepo.List(f)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	return transactions, repository.NewPagination(f.Page, f.Limit, total), nil
}

func (s *inventoryService) GetTransaction(id uuid.UUID) (*model.Transaction, error) {
	transaction, err := s.txRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("TRANSACTION_NOT_FOUND", "Transaction not found")
		}
		return nil, err
	}
	return transaction, nil
}

func (s *inventoryService) ProductTransactions(productID uuid.UUID) ([]model.Transaction, error) {
	return s.txRepo.FindByProduct(productID, 50)
}

func (s *inventoryService) TransactionStats(startDate, endDate *time.Time) (*repository.TransactionStats, error) {
	return s.txRepo.Stats(startDate, endDate)
}
