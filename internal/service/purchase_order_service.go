package service

import (
	"crypto/rand"
	"encoding/hex"
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

type PurchaseOrderService interface {
	Create(userID uuid.UUID, req *model.PurchaseOrderRequest) (*model.PurchaseOrder, error)
	List(f repository.PurchaseOrderFilter) ([]model.PurchaseOrder, repository.Pagination, error)
	Get(id uuid.UUID) (*model.PurchaseOrder, error)
	UpdateStatus(userID, id uuid.UUID, status model.PurchaseOrderStatus) (*model.PurchaseOrder, error)
	Cancel(userID, id uuid.UUID) (*model.PurchaseOrder, error)
}

type purchaseOrderService struct {
	poRepo       repository.PurchaseOrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	txRepo       repository.TransactionRepository
	notifier     NotificationService
	db           *gorm.DB
	hub          Publisher
	log          zerolog.Logger
}

func NewPurchaseOrderService(
	poRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	txRepo repository.TransactionRepository,
	notifier NotificationService,
	db *gorm.DB,
	hub Publisher,
	log zerolog.Logger,
) PurchaseOrderService {
	return &purchaseOrderService{
		poRepo:       poRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		txRepo:       txRepo,
		notifier:     notifier,
		db:           db,
		hub:          hub,
		log:          log,
	}
}

func generateOrderNumber() string {
	buf := make([]byte, 3)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("PO-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}

func (s *purchaseOrderService) Create(userID uuid.UUID, req *model.PurchaseOrderRequest) (*model.PurchaseOrder, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ProductNotFound()
		}
		return nil, err
	}
	if _, err := s.supplierRepo.FindByID(req.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.SupplierNotFound()
		}
		return nil, err
	}

	po := &model.PurchaseOrder{
		OrderNumber:  generateOrderNumber(),
		ProductID:    req.ProductID,
		SupplierID:   req.SupplierID,
		UserID:       userID,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		TotalAmount:  float64(req.Quantity) * req.UnitPrice, // fixed at creation
		Status:       model.POStatusPending,
		ExpectedDate: req.ExpectedDate,
		Notes:        req.Notes,
	}
	if err := s.poRepo.Create(po); err != nil {
		return nil, err
	}

	s.notifier.NotifyPOUpdate(userID, po, "Purchase Order Created",
		fmt.Sprintf("Purchase order #%s created for %s", po.OrderNumber, product.Name))

	created, err := s.poRepo.FindByID(po.ID)
	if err != nil {
		return po, nil
	}
	return created, nil
}

func (s *purchaseOrderService) List(f repository.PurchaseOrderFilter) ([]model.PurchaseOrder, repository.Pagination, error) {
	f.Normalize(50)
	orders, total, err := s.poRepo.List(f)
	if err != nil {
		return nil, repository.Pagination{}, err
	}
	return orders, repository.NewPagination(f.Page, f.Limit, total), nil
}

func (s *purchaseOrderService) Get(id uuid.UUID) (*model.PurchaseOrder, error) {
	po, err := s.poRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.PurchaseOrderNotFound()
		}
		return nil, err
	}
	return po, nil
}

// UpdateStatus moves the order through its lifecycle. Delivery is the only
// transition with inventory side effects: it sets the delivered timestamp,
// writes a stock_in ledger entry against the live product quantity and bumps
// the product, all in one database transaction. The status write asserts the
// status read before the transaction, so two racing deliveries cannot both
// apply the stock increment.
func (s *purchaseOrderService) UpdateStatus(userID, id uuid.UUID, status model.PurchaseOrderStatus) (*model.PurchaseOrder, error) {
	if !status.Valid() {
		return nil, apperr.InvalidStatus(
			"Invalid status. Must be one of: pending, approved, delivered, cancelled")
	}

	po, err := s.poRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.PurchaseOrderNotFound()
		}
		return nil, err
	}

	if !po.Status.CanTransitionTo(status) {
		return nil, apperr.InvalidStatus(
			fmt.Sprintf("Cannot transition purchase order from %s to %s", po.Status, status))
	}

	prev := po.Status
	err = s.db.Transaction(func(tx *gorm.DB) error {
		po.Status = status
		if status == model.POStatusDelivered {
			now := time.Now()
			po.DeliveredDate = &now
		}
		// The conditional update re-checks the status read above, so a
		// concurrent writer cannot sneak in between the check and the commit.
		if err := s.poRepo.UpdateStatus(tx, po, prev); err != nil {
			return err
		}

		if status != model.POStatusDelivered {
			return nil
		}

		product, err := s.productRepo.FindByIDForUpdate(tx, po.ProductID)
		if err != nil {
			return err
		}

		beforeQty := product.Quantity
		afterQty := beforeQty + po.Quantity

		entry := &model.Transaction{
			ProductID:   po.ProductID,
			UserID:      userID,
			Type:        model.TxStockIn,
			Quantity:    po.Quantity,
			BeforeQty:   beforeQty,
			AfterQty:    afterQty,
			UnitPrice:   po.UnitPrice,
			TotalValue:  po.TotalAmount,
			Notes:       fmt.Sprintf("Purchase Order #%s received", po.OrderNumber),
			ReferenceNo: po.OrderNumber,
		}
		if err := s.txRepo.Create(tx, entry); err != nil {
			return err
		}
		return s.productRepo.UpdateQuantity(tx, po.ProductID, afterQty)
	})
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, apperr.InvalidStatus(
				fmt.Sprintf("Purchase order is no longer %s", prev))
		}
		return nil, err
	}

	s.notifier.NotifyPOUpdate(userID, po, "Purchase Order Updated",
		fmt.Sprintf("Purchase order #%s status changed to %s", po.OrderNumber, status))
	if s.hub != nil {
		s.hub.Publish("po_status_changed", map[string]interface{}{
			"order_number": po.OrderNumber,
			"status":       status,
		})
	}

	return s.poRepo.FindByID(id)
}

// Cancel is a plain status write: no stock was reserved at creation, so none
// is restored here.
func (s *purchaseOrderService) Cancel(userID, id uuid.UUID) (*model.PurchaseOrder, error) {
	return s.UpdateStatus(userID, id, model.POStatusCancelled)
}
