package service

import (
	"errors"
	"fmt"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Publisher pushes advisory events to connected clients.
type Publisher interface {
	Publish(event string, payload map[string]interface{})
}

// NotificationListResult bundles the listing with the caller's unread count.
type NotificationListResult struct {
	Notifications []model.Notification  `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
	Pagination    repository.Pagination `json:"pagination"`
}

type NotificationService interface {
	List(userID uuid.UUID, f repository.NotificationFilter) (*NotificationListResult, error)
	MarkRead(userID, id uuid.UUID) (*model.Notification, error)
	MarkAllRead(userID uuid.UUID) error
	Delete(userID, id uuid.UUID) error

	// Side-effect emitters used by the inventory and purchase-order flows.
	// All are best-effort: failures are logged, never returned.
	NotifyStockLevel(userID uuid.UUID, product *model.Product, cause string)
	NotifyPOUpdate(userID uuid.UUID, po *model.PurchaseOrder, title, message string)
}

type notificationService struct {
	repo repository.NotificationRepository
	hub  Publisher
	log  zerolog.Logger
}

func NewNotificationService(repo repository.NotificationRepository, hub Publisher, log zerolog.Logger) NotificationService {
	return &notificationService{repo: repo, hub: hub, log: log}
}

func (s *notificationService) List(userID uuid.UUID, f repository.NotificationFilter) (*NotificationListResult, error) {
	f.UserID = userID
	f.Normalize(50)

	notifications, total, err := s.repo.List(f)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.UnreadCount(userID)
	if err != nil {
		return nil, err
	}

	return &NotificationListResult{
		Notifications: notifications,
		UnreadCount:   unread,
		Pagination:    repository.NewPagination(f.Page, f.Limit, total),
	}, nil
}

func (s *notificationService) MarkRead(userID, id uuid.UUID) (*model.Notification, error) {
	notification, err := s.ownedNotification(userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MarkRead(id); err != nil {
		return nil, err
	}
	notification.Read = true
	return notification, nil
}

func (s *notificationService) MarkAllRead(userID uuid.UUID) error {
	return s.repo.MarkAllRead(userID)
}

func (s *notificationService) Delete(userID, id uuid.UUID) error {
	if _, err := s.ownedNotification(userID, id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *notificationService) ownedNotification(userID, id uuid.UUID) (*model.Notification, error) {
	notification, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotificationNotFound()
		}
		return nil, err
	}
	if notification.UserID != userID {
		return nil, apperr.Forbidden("You can only manage your own notifications")
	}
	return notification, nil
}

// NotifyStockLevel creates a low_stock or out_of_stock notification when the
// product quantity sits at or below its MinStockLevel. Notification failures
// must never roll back the stock mutation that triggered them.
func (s *notificationService) NotifyStockLevel(userID uuid.UUID, product *model.Product, cause string) {
	if product.Quantity > product.MinStockLevel {
		return
	}

	notifType := model.NotifLowStock
	title := "Low Stock Alert"
	state := "running low"
	if product.Quantity == 0 {
		notifType = model.NotifOutOfStock
		title = "Product Out of Stock"
		state = "out of stock"
	}

	productID := product.ID
	notification := &model.Notification{
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   fmt.Sprintf("Product %q is %s after %s", product.Name, state, cause),
		ProductID: &productID,
		Link:      fmt.Sprintf("/products/%s", product.ID),
	}

	if err := s.repo.Create(notification); err != nil {
		s.log.Warn().Err(err).
			Str("product_id", product.ID.String()).
			Msg("failed to create stock level notification")
		return
	}

	if s.hub != nil {
		s.hub.Publish("notification_created", map[string]interface{}{
			"notification": notification,
		})
	}
}

// NotifyPOUpdate records a purchase-order lifecycle notification.
func (s *notificationService) NotifyPOUpdate(userID uuid.UUID, po *model.PurchaseOrder, title, message string) {
	productID := po.ProductID
	notification := &model.Notification{
		UserID:    userID,
		Type:      model.NotifPOUpdate,
		Title:     title,
		Message:   message,
		ProductID: &productID,
		Link:      fmt.Sprintf("/purchase-orders/%s", po.ID),
	}

	if err := s.repo.Create(notification); err != nil {
		s.log.Warn().Err(err).
			Str("order_number", po.OrderNumber).
			Msg("failed to create purchase order notification")
		return
	}

	if s.hub != nil {
		s.hub.Publish("notification_created", map[string]interface{}{
			"notification": notification,
		})
	}
}
