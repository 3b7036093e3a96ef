package migration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/model"
	timeProvider "github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/time"
	mockpersistence "github.com/amirhossein-jamali/loan-tracker/mocks/port/persistence"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "migration.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestMigrateAll(t *testing.T) {
	db := openTestDB(t)
	manager := NewMigrationManager(db, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())
	ctx := context.Background()

	version, err := manager.GetCurrentVersion(ctx)
	require.Error(t, err, "version table does not exist before the first run")
	assert.Empty(t, version)

	require.NoError(t, manager.MigrateAll(ctx))

	for _, m := range Models() {
		assert.True(t, db.Migrator().HasTable(m), "table for %T", m)
	}
	assert.True(t, db.Migrator().HasIndex(&model.Notification{}, "idx_notifications_user_time"))
	assert.True(t, db.Migrator().HasIndex(&model.Loan{}, "idx_loans_user_updated"))

	version, err = manager.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)
}

func TestMigrateAll_IsIdempotent(t *testing.T) {
	db := openTestDB(t)
	manager := NewMigrationManager(db, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())
	ctx := context.Background()

	require.NoError(t, manager.MigrateAll(ctx))
	require.NoError(t, manager.MigrateAll(ctx))

	var count int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetCurrentVersion_CanceledContext(t *testing.T) {
	db := openTestDB(t)
	manager := NewMigrationManager(db, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := manager.GetCurrentVersion(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreateDefaultSettings(t *testing.T) {
	t.Run("creates when absent", func(t *testing.T) {
		repo := mockpersistence.NewMockSettingsRepository(t)
		repo.EXPECT().EnsureDefaults(mock.Anything).Return(true, nil)

		assert.NoError(t, CreateDefaultSettings(context.Background(), repo, logger.NewNoopLogger()))
	})

	t.Run("existing record is kept", func(t *testing.T) {
		repo := mockpersistence.NewMockSettingsRepository(t)
		repo.EXPECT().EnsureDefaults(mock.Anything).Return(false, nil)

		assert.NoError(t, CreateDefaultSettings(context.Background(), repo, logger.NewNoopLogger()))
	})

	t.Run("store error is returned", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		repo := mockpersistence.NewMockSettingsRepository(t)
		repo.EXPECT().EnsureDefaults(mock.Anything).Return(false, storeErr)

		assert.ErrorIs(t, CreateDefaultSettings(context.Background(), repo, logger.NewNoopLogger()), storeErr)
	})
}
