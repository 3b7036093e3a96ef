package usecase

import (
	"context"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
)

// SyncUseCase is the client synchronization protocol: one full read and
// batched writes per entity
type SyncUseCase interface {
	// GetSnapshot returns every user, every loan (newest write first), the
	// most recent notifications and the settings values
	GetSnapshot(ctx context.Context) (*entity.Snapshot, error)

	// ApplyUsers upserts each raw user, matching by id then phone
	ApplyUsers(ctx context.Context, batch []map[string]any) error

	// ApplyLoans upserts each raw loan by id
	ApplyLoans(ctx context.Context, batch []map[string]any) error

	// ApplyNotifications upserts each raw notification by id
	ApplyNotifications(ctx context.Context, batch []map[string]any) error

	// SetBudget updates the singleton budget
	SetBudget(ctx context.Context, value float64) error

	// SetRankProfit updates the singleton rank profit
	SetRankProfit(ctx context.Context, value float64) error

	// DeleteUser removes a user together with its loans and notifications
	DeleteUser(ctx context.Context, userID string) error
}
