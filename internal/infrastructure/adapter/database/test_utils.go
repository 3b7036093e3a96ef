package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/loan-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/id"
	timeprovider "github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/time"
)

// TestDBManager provides a bootstrapped SQLite store for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// TestConfig returns a SQLite config rooted in a per-test temp directory
func TestConfig(t *testing.T) *Config {
	t.Helper()

	return &Config{
		Driver:              DriverSQLite,
		SQLitePath:          filepath.Join(t.TempDir(), "loan-tracker-test.db"),
		MaxIdleConns:        1,
		ConnMaxLifetime:     5 * time.Minute,
		ConnMaxIdleTime:     5 * time.Minute,
		ConnectTimeout:      5 * time.Second,
		QueryTimeout:        5 * time.Second,
		HealthCheckInterval: time.Second,
		LogLevel:            "silent",
	}
}

// NewTestDBManager connects to a fresh SQLite file and bootstraps it. The
// connection is closed when the test ends.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()
	config := TestConfig(t)
	manager := NewManager(config, logger, timeProvider, id.NewUUIDGenerator(), NewHealthState())

	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Failed to bootstrap test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}
