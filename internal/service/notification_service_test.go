package service

import (
	"testing"

	"go-stockpilot/internal/apperr"
	"go-stockpilot/internal/model"
	"go-stockpilot/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService(db *gorm.DB) NotificationService {
	return NewNotificationService(repository.NewNotificationRepo(db), nil, testLogger())
}

func seedNotification(t *testing.T, db *gorm.DB, user model.User) *model.Notification {
	t.Helper()

	n := &model.Notification{
		UserID:  user.ID,
		Type:    model.NotifSystem,
		Title:   "Test",
		Message: "Test message",
	}
	require.NoError(t, db.Create(n).Error)
	return n
}

func TestNotificationListAndUnreadCount(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	other := seedUser(t, db, model.RoleUser)
	svc := newNotificationService(db)

	seedNotification(t, db, *user)
	seedNotification(t, db, *user)
	seedNotification(t, db, *other)

	result, err := svc.List(user.ID, repository.NotificationFilter{})
	require.NoError(t, err)

	// Only the caller's notifications.
	assert.Len(t, result.Notifications, 2)
	assert.Equal(t, int64(2), result.UnreadCount)
}

func TestMarkReadUpdatesUnreadCount(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	svc := newNotificationService(db)

	n := seedNotification(t, db, *user)

	marked, err := svc.MarkRead(user.ID, n.ID)
	require.NoError(t, err)
	assert.True(t, marked.Read)

	result, err := svc.List(user.ID, repository.NotificationFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.UnreadCount)
}

func TestMarkReadOtherUsersNotificationForbidden(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, model.RoleUser)
	intruder := seedUser(t, db, model.RoleUser)
	svc := newNotificationService(db)

	n := seedNotification(t, db, *owner)

	_, err := svc.MarkRead(intruder.ID, n.ID)
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestMarkAllRead(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	other := seedUser(t, db, model.RoleUser)
	svc := newNotificationService(db)

	seedNotification(t, db, *user)
	seedNotification(t, db, *user)
	otherNotif := seedNotification(t, db, *other)

	require.NoError(t, svc.MarkAllRead(user.ID))

	result, err := svc.List(user.ID, repository.NotificationFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.UnreadCount)

	// The other user's notification stays unread.
	var reloaded model.Notification
	require.NoError(t, db.First(&reloaded, "id = ?", otherNotif.ID).Error)
	assert.False(t, reloaded.Read)
}

func TestDeleteOtherUsersNotificationForbidden(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, model.RoleUser)
	intruder := seedUser(t, db, model.RoleUser)
	svc := newNotificationService(db)

	n := seedNotification(t, db, *owner)

	err := svc.Delete(intruder.ID, n.ID)
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestUnreadOnlyFilter(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, model.RoleUser)
	svc := newNotificationService(db)

	read := seedNotification(t, db, *user)
	seedNotification(t, db, *user)
	require.NoError(t, db.Model(read).Update("read", true).Error)

	result, err := svc.List(user.ID, repository.NotificationFilter{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, result.Notifications, 1)
	assert.False(t, result.Notifications[0].Read)
}
