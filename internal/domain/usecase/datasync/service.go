package datasync

import (
	coreport "github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/usecase"
)

// DefaultNotificationLimit caps the notifications returned in a snapshot
const DefaultNotificationLimit = 200

// Service implements the client synchronization protocol over the entity repositories
type Service struct {
	uow               persistence.UnitOfWork
	users             persistence.UserRepository
	loans             persistence.LoanRepository
	notifications     persistence.NotificationRepository
	settings          persistence.SettingsRepository
	logger            coreport.Logger
	notificationLimit int
}

// Compile-time check that Service implements SyncUseCase
var _ usecase.SyncUseCase = (*Service)(nil)

// NewSyncService creates a new sync service. Non-transactional reads and
// writes go through the repositories; per-entry user upserts and cascade
// deletes go through uow.
func NewSyncService(
	uow persistence.UnitOfWork,
	users persistence.UserRepository,
	loans persistence.LoanRepository,
	notifications persistence.NotificationRepository,
	settings persistence.SettingsRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:               uow,
		users:             users,
		loans:             loans,
		notifications:     notifications,
		settings:          settings,
		logger:            logger,
		notificationLimit: DefaultNotificationLimit,
	}
}

// WithNotificationLimit overrides the snapshot notification cap
func (s *Service) WithNotificationLimit(limit int) *Service {
	if limit > 0 {
		s.notificationLimit = limit
	}
	return s
}
