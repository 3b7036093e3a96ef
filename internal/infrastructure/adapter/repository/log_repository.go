package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/model"
)

// LogRepository stores the audit trail using GORM
type LogRepository struct {
	logs *collection[model.LogEntry]
}

var _ persistence.LogRepository = (*LogRepository)(nil)

// NewLogRepository creates a new LogRepository instance
func NewLogRepository(db *gorm.DB, opts Options) *LogRepository {
	return &LogRepository{
		logs: newCollection[model.LogEntry](db, "log", nil, opts),
	}
}

// FindAll returns log entries matching q
func (r *LogRepository) FindAll(ctx context.Context, q persistence.Query) ([]entity.LogEntry, error) {
	rows, err := r.logs.find(ctx, q)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.LogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entity.LogEntry{
			ID:     row.ID,
			User:   row.User,
			Time:   row.Time,
			Action: row.Action,
			IP:     row.IP,
			Device: row.Device,
		})
	}
	return entries, nil
}

// Append inserts entry, assigning its ID when empty
func (r *LogRepository) Append(ctx context.Context, entry *entity.LogEntry) error {
	if entry.ID == "" {
		entry.ID = r.logs.opts.IDGenerator.NewID()
	}

	return r.logs.create(ctx, &model.LogEntry{
		ID:     entry.ID,
		User:   entry.User,
		Time:   entry.Time,
		Action: entry.Action,
		IP:     entry.IP,
		Device: entry.Device,
	})
}
