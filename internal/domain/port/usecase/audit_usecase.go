package usecase

import (
	"context"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
)

// AuditLogUseCase reads and appends the admin audit trail
type AuditLogUseCase interface {
	// ListLogs returns the most recent entries, newest first
	ListLogs(ctx context.Context) ([]entity.LogEntry, error)

	// AppendLog stores one raw entry
	AppendLog(ctx context.Context, raw map[string]any) error
}
