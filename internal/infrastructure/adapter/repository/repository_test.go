package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/model"
)

// stubClock is a settable clock for deterministic updatedAt stamps
type stubClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stubClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *stubClock) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *stubClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// sequenceIDs hands out id-1, id-2, ...
type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func setupTestDB(t *testing.T) (*gorm.DB, Options, *stubClock) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "repository.db")
	db, err := gorm.Open(sqlite.Open(dbPath+"?_busy_timeout=5000"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Loan{},
		&model.Notification{},
		&model.SystemSettings{},
		&model.LogEntry{},
	))

	clock := &stubClock{now: time.UnixMilli(1_700_000_000_000)}
	opts := Options{
		TimeProvider: clock,
		IDGenerator:  &sequenceIDs{},
		Logger:       logger.NewNoopLogger(),
		QueryTimeout: 5 * time.Second,
	}
	return db, opts, clock
}
