package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	timeprovider "github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/time"
	mockcore "github.com/amirhossein-jamali/loan-tracker/mocks/port/core"
)

func TestDatabaseLogger_Trace(t *testing.T) {
	core := mockcore.NewMockLogger(t)
	l := NewDatabaseLogger(core, timeprovider.NewRealTimeProvider(), "info")
	query := func() (string, int64) { return `SELECT * FROM "users" WHERE id = 1`, 1 }

	core.EXPECT().Debug("SQL Query", mock.MatchedBy(func(f map[string]any) bool {
		return f["type"] == "SELECT" && f["table"] == "users"
	})).Once()
	l.Trace(context.Background(), time.Now(), query, nil)

	// not found is part of normal upsert lookups
	core.EXPECT().Debug("SQL Query", mock.Anything).Once()
	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)

	core.EXPECT().Error("SQL Error", mock.MatchedBy(func(f map[string]any) bool {
		return f["error"] == "boom"
	})).Once()
	l.Trace(context.Background(), time.Now(), query, errors.New("boom"))

	core.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()
	l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
}

func TestDatabaseLogger_Silent(t *testing.T) {
	core := mockcore.NewMockLogger(t)
	l := NewDatabaseLogger(core, timeprovider.NewRealTimeProvider(), "info").LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("ignored"))
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "loans", extractTableName(`UPDATE "loans" SET "status"='x'`))
	assert.Equal(t, "logs", extractTableName(`INSERT INTO "logs" ("id") VALUES ('a')`))
	assert.Equal(t, "", extractTableName("SAVEPOINT sp1"))
	assert.Equal(t, "SAVEPOINT", extractQueryType("savepoint sp1"))
}
