package service

import (
	"time"

	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"
)

// DashboardStats is the overview block on the dashboard page.
type DashboardStats struct {
	TotalProducts       int64   `json:"total_products"`
	LowStockCount       int64   `json:"low_stock_count"`
	OutOfStockCount     int64   `json:"out_of_stock_count"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	PendingOrders       int64   `json:"pending_orders"`
	ApprovedOrders      int64   `json:"approved_orders"`
}

type DashboardService interface {
	Stats() (*DashboardStats, error)
	StockMovement(days int) ([]repository.StockMovementPoint, error)
	RecentActivity(limit int) ([]model.Transaction, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	poRepo      repository.PurchaseOrderRepository
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	poRepo repository.PurchaseOrderRepository,
) DashboardService {
	return &dashboardService{
		productRepo: productRepo,
		txRepo:      txRepo,
		poRepo:      poRepo,
	}
}

func (s *dashboardService) Stats() (*DashboardStats, error) {
	productStats, err := s.productRepo.Stats()
	if err != nil {
		return nil, err
	}
	pending, err := s.poRepo.CountByStatus(model.POStatusPending)
	if err != nil {
		return nil, err
	}
	approved, err := s.poRepo.CountByStatus(model.POStatusApproved)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts:       productStats.TotalProducts,
		LowStockCount:       productStats.LowStockCount,
		OutOfStockCount:     productStats.OutOfStockCount,
		TotalInventoryValue: productStats.TotalInventoryValue,
		PendingOrders:       pending,
		ApprovedOrders:      approved,
	}, nil
}

func (s *dashboardService) StockMovement(days int) ([]repository.StockMovementPoint, error) {
	if days <= 0 {
		days = 7
	}
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)
	return s.txRepo.StockMovement(startDate, endDate)
}

func (s *dashboardService) RecentActivity(limit int) ([]model.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.txRepo.Recent(limit)
}
