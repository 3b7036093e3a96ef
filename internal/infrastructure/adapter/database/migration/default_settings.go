package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
)

// CreateDefaultSettings inserts the settings row with default values unless
// one already exists
func CreateDefaultSettings(ctx context.Context, settings persistence.SettingsRepository, logger coreport.Logger) error {
	created, err := settings.EnsureDefaults(ctx)
	if err != nil {
		return err
	}

	if created {
		logger.Info("Default system settings created", nil)
	}
	return nil
}
