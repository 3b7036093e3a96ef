package persistence

import (
	"context"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
)

// LogRepository is the append-only audit log store
type LogRepository interface {
	// FindAll returns log entries matching the query
	FindAll(ctx context.Context, q Query) ([]entity.LogEntry, error)

	// Append inserts entry, assigning its ID when empty
	Append(ctx context.Context, entry *entity.LogEntry) error
}
