package repository

import (
	"time"

	"go-stockpilot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter narrows the ledger listing.
type TransactionFilter struct {
	ListQuery
	Type      string
	ProductID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionStats aggregates ledger entry counts per type.
type TransactionStats struct {
	TotalTransactions int64 `json:"total_transactions"`
	StockInCount      int64 `json:"stock_in_count"`
	StockOutCount     int64 `json:"stock_out_count"`
	AdjustmentCount   int64 `json:"adjustment_count"`
	ReturnCount       int64 `json:"return_count"`
	DamageCount       int64 `json:"damage_count"`
}

// StockMovementPoint is one day of aggregated in/out quantities for charts.
type StockMovementPoint struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type TransactionRepository interface {
	Create(tx *gorm.DB, transaction *model.Transaction) error
	List(f TransactionFilter) ([]model.Transaction, int64, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	FindByProduct(productID uuid.UUID, limit int) ([]model.Transaction, error)
	Recent(limit int) ([]model.Transaction, error)
	Stats(startDate, endDate *time.Time) (*TransactionStats, error)
	StockMovement(startDate, endDate time.Time) ([]StockMovementPoint, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Create writes the ledger entry inside the caller's transaction; ledger rows
// never exist without their matching product quantity update.
func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

func (r *transactionRepo) List(f TransactionFilter) ([]model.Transaction, int64, error) {
	f.Normalize(50)

	query := r.db.Model(&model.Transaction{})
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.ProductID != nil {
		query = query.Where("product_id = ?", *f.ProductID)
	}
	if f.StartDate != nil && f.EndDate != nil {
		query = query.Where("created_at BETWEEN ? AND ?", *f.StartDate, *f.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []model.Transaction
	err := query.
		Preload("Product").
		Preload("User").
		Order("created_at DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&transactions).Error
	return transactions, total, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.
		Preload("Product").
		Preload("User").
		First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) FindByProduct(productID uuid.UUID, limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.
		Where("product_id = ?", productID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) Recent(limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.
		Preload("Product").
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) Stats(startDate, endDate *time.Time) (*TransactionStats, error) {
	scoped := func() *gorm.DB {
		query := r.db.Model(&model.Transaction{})
		if startDate != nil && endDate != nil {
			query = query.Where("created_at BETWEEN ? AND ?", *startDate, *endDate)
		}
		return query
	}

	var stats TransactionStats
	if err := scoped().Count(&stats.TotalTransactions).Error; err != nil {
		return nil, err
	}

	counts := map[model.TransactionType]*int64{
		model.TxStockIn:    &stats.StockInCount,
		model.TxStockOut:   &stats.StockOutCount,
		model.TxAdjustment: &stats.AdjustmentCount,
		model.TxReturn:     &stats.ReturnCount,
		model.TxDamage:     &stats.DamageCount,
	}
	for txType, dest := range counts {
		if err := scoped().Where("type = ?", txType).Count(dest).Error; err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

func (r *transactionRepo) StockMovement(startDate, endDate time.Time) ([]StockMovementPoint, error) {
	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN type IN ('stock_in', 'return') THEN quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN type IN ('stock_out', 'damage') THEN quantity ELSE 0 END), 0) as outbound
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []StockMovementPoint
	for rows.Next() {
		var point StockMovementPoint
		if err := rows.Scan(&point.Date, &point.Inbound, &point.Outbound); err != nil {
			return nil, err
		}
		results = append(results, point)
	}
	return results, rows.Err()
}
