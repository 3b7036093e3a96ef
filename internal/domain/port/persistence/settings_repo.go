package persistence

import (
	"context"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
)

// SettingsRepository manages the singleton settings record
type SettingsRepository interface {
	// Get returns the settings record
	//
	// Possible errors:
	// - ErrNotFound: If the record was never created
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context) (*entity.Settings, error)

	// EnsureDefaults creates the record with default values if it does not
	// exist. Concurrent callers never produce two records. Reports whether
	// this call created it.
	EnsureDefaults(ctx context.Context) (bool, error)

	// Set writes one field, creating the record with defaults for the other
	// fields if it does not exist
	Set(ctx context.Context, field entity.SettingsField, value float64) error
}
