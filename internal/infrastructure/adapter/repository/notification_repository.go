package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/model"
)

// NotificationRepository implements NotificationRepository interface using GORM
type NotificationRepository struct {
	notifications *collection[model.Notification]
}

var _ persistence.NotificationRepository = (*NotificationRepository)(nil)

// NewNotificationRepository creates a new NotificationRepository instance
func NewNotificationRepository(db *gorm.DB, opts Options) *NotificationRepository {
	return &NotificationRepository{
		notifications: newCollection[model.Notification](db, "notification", nil, opts),
	}
}

func notificationToEntity(m *model.Notification) entity.Notification {
	return entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Time:      m.Time,
		Read:      m.Read,
		Type:      m.Type,
		UpdatedAt: m.UpdatedAt,
	}
}

// FindAll returns notifications matching q
func (r *NotificationRepository) FindAll(ctx context.Context, q persistence.Query) ([]entity.Notification, error) {
	rows, err := r.notifications.find(ctx, q)
	if err != nil {
		return nil, err
	}

	notifications := make([]entity.Notification, 0, len(rows))
	for i := range rows {
		notifications = append(notifications, notificationToEntity(&rows[i]))
	}
	return notifications, nil
}

// UpsertByKey updates or inserts the notification matching key
func (r *NotificationRepository) UpsertByKey(ctx context.Context, key persistence.Key, patch entity.Patch) error {
	return r.notifications.upsert(ctx, key, patch)
}

// DeleteByKey removes the notifications matching key
func (r *NotificationRepository) DeleteByKey(ctx context.Context, key persistence.Key) (int64, error) {
	return r.notifications.remove(ctx, key)
}
