package repository

import (
	"go-stockpilot/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationFilter narrows a user's notification listing.
type NotificationFilter struct {
	ListQuery
	UserID     uuid.UUID
	UnreadOnly bool
	Type       string
}

type NotificationRepository interface {
	Create(notification *model.Notification) error
	List(f NotificationFilter) ([]model.Notification, int64, error)
	FindByID(id uuid.UUID) (*model.Notification, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead(userID uuid.UUID) error
	Delete(id uuid.UUID) error
	UnreadCount(userID uuid.UUID) (int64, error)
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db}
}

func (r *notificationRepo) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepo) List(f NotificationFilter) ([]model.Notification, int64, error) {
	f.Normalize(50)

	query := r.db.Model(&model.Notification{}).Where("user_id = ?", f.UserID)
	if f.UnreadOnly {
		query = query.Where("read = ?", false)
	}
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.Search != "" {
		pattern := searchPattern(f.Search)
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(message) LIKE ?",
			pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []model.Notification
	err := query.
		Preload("Product").
		Order("created_at DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *notificationRepo) FindByID(id uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepo) MarkRead(id uuid.UUID) error {
	return r.db.Model(&model.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}

func (r *notificationRepo) MarkAllRead(userID uuid.UUID) error {
	return r.db.Model(&model.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

func (r *notificationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Notification{}, "id = ?", id).Error
}

func (r *notificationRepo) UnreadCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}
