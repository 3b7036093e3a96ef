package audit

import (
	"context"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/usecase"
)

// DefaultListLimit caps the entries returned by ListLogs
const DefaultListLimit = 100

// Service reads and appends the admin audit trail
type Service struct {
	repo      persistence.LogRepository
	ids       coreport.IDGenerator
	logger    coreport.Logger
	listLimit int
}

var _ usecase.AuditLogUseCase = (*Service)(nil)

// NewAuditService creates a new audit log service
func NewAuditService(repo persistence.LogRepository, ids coreport.IDGenerator, logger coreport.Logger) *Service {
	return &Service{
		repo:      repo,
		ids:       ids,
		logger:    logger,
		listLimit: DefaultListLimit,
	}
}

// WithListLimit overrides the number of entries ListLogs returns
func (s *Service) WithListLimit(limit int) *Service {
	if limit > 0 {
		s.listLimit = limit
	}
	return s
}

// ListLogs returns the most recent entries ordered by time descending
func (s *Service) ListLogs(ctx context.Context) ([]entity.LogEntry, error) {
	logs, err := s.repo.FindAll(ctx, persistence.SortedDesc("time", s.listLimit))
	if err != nil {
		s.logger.Error("Failed to list logs", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	if logs == nil {
		logs = []entity.LogEntry{}
	}
	return logs, nil
}

// AppendLog validates raw and stores it as a new entry
func (s *Service) AppendLog(ctx context.Context, raw map[string]any) error {
	if raw == nil {
		return errs.ErrInvalidRequest
	}

	decoded, err := entity.LogEntrySchema.Decode(raw)
	if err != nil {
		return err
	}

	entry, err := entity.NewLogEntry(decoded.Patch)
	if err != nil {
		return err
	}
	entry.ID = s.ids.NewID()

	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.Error("Failed to append log", map[string]any{
			"user":   entry.User,
			"action": entry.Action,
			"error":  err.Error(),
		})
		return err
	}

	s.logger.Debug("Log appended", map[string]any{
		"id":     entry.ID,
		"user":   entry.User,
		"action": entry.Action,
	})
	return nil
}
