package persistence

import (
	"context"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
)

// NotificationRepository defines methods to interact with notification records
type NotificationRepository interface {
	FindAll(ctx context.Context, q Query) ([]entity.Notification, error)
	UpsertByKey(ctx context.Context, key Key, patch entity.Patch) error
	DeleteByKey(ctx context.Context, key Key) (int64, error)
}
