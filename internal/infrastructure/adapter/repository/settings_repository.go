package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/model"
)

const scopeColumn = "scope"

// SettingsRepository stores the singleton settings row using GORM
type SettingsRepository struct {
	settings *collection[model.SystemSettings]
}

var _ persistence.SettingsRepository = (*SettingsRepository)(nil)

// NewSettingsRepository creates a new SettingsRepository instance
func NewSettingsRepository(db *gorm.DB, opts Options) *SettingsRepository {
	return &SettingsRepository{
		settings: newCollection[model.SystemSettings](db, "settings", nil, opts),
	}
}

// Get returns the stored settings or ErrNotFound when the row is absent
func (r *SettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	c := r.settings
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var row model.SystemSettings
	err := c.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: scopeColumn}, Value: entity.SettingsScope}).
		Take(&row).Error
	if err != nil {
		return nil, c.handleDatabaseError("reading settings", err, entity.SettingsScope)
	}

	return &entity.Settings{Budget: row.Budget, RankProfit: row.RankProfit}, nil
}

// EnsureDefaults inserts the default settings row unless one exists and
// reports whether it inserted
func (r *SettingsRepository) EnsureDefaults(ctx context.Context) (bool, error) {
	c := r.settings
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	defaults := entity.DefaultSettings()
	result := c.db.WithContext(ctx).
		Model(&model.SystemSettings{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: scopeColumn}},
			DoNothing: true,
		}).
		Create(map[string]any{
			scopeColumn:     entity.SettingsScope,
			"budget":        defaults.Budget,
			"rank_profit":   defaults.RankProfit,
			updatedAtColumn: c.opts.TimeProvider.Now().UnixMilli(),
		})
	if result.Error != nil {
		return false, c.handleDatabaseError("seeding settings", result.Error, entity.SettingsScope)
	}

	return result.RowsAffected > 0, nil
}

// Set writes one settings field with a single insert-on-conflict-update so
// concurrent writers never produce a second row
func (r *SettingsRepository) Set(ctx context.Context, field entity.SettingsField, value float64) error {
	c := r.settings
	col, err := c.column(string(field))
	if err != nil {
		return fmt.Errorf("%w: unknown settings field %q", errs.ErrInvalidRequest, field)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	result := c.db.WithContext(ctx).
		Model(&model.SystemSettings{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: scopeColumn}},
			DoUpdates: clause.AssignmentColumns([]string{col, updatedAtColumn}),
		}).
		Create(map[string]any{
			scopeColumn:     entity.SettingsScope,
			col:             value,
			updatedAtColumn: c.opts.TimeProvider.Now().UnixMilli(),
		})
	if result.Error != nil {
		return c.handleDatabaseError("updating settings", result.Error, string(field))
	}

	c.opts.Logger.Info("Settings updated", map[string]any{
		"field": string(field),
		"value": value,
	})
	return nil
}
