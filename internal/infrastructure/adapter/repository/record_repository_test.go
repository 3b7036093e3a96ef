package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
)

func TestLoanRepository_FindAllSortedByUpdatedAt(t *testing.T) {
	db, opts, clock := setupTestDB(t)
	repo := NewLoanRepository(db, opts)
	ctx := context.Background()

	for _, id := range []string{"l1", "l2", "l3"} {
		require.NoError(t, repo.UpsertByKey(ctx, persistence.ByID(id), entity.Patch{
			"userId": "u1",
			"amount": 1000.0,
			"status": "pending",
		}))
		clock.Set(clock.Now().Add(time.Second))
	}
	require.NoError(t, repo.UpsertByKey(ctx, persistence.ByID("l1"), entity.Patch{"status": "approved"}))

	loans, err := repo.FindAll(ctx, persistence.SortedDesc("updatedAt", 0))
	require.NoError(t, err)
	require.Len(t, loans, 3)
	assert.Equal(t, []string{"l1", "l3", "l2"}, []string{loans[0].ID, loans[1].ID, loans[2].ID})
	assert.Equal(t, entity.LoanStatus("approved"), loans[0].Status)
	assert.Zero(t, loans[0].Fine)
}

func TestLoanRepository_DeleteByUserID(t *testing.T) {
	db, opts, _ := setupTestDB(t)
	repo := NewLoanRepository(db, opts)
	ctx := context.Background()

	require.NoError(t, repo.UpsertByKey(ctx, persistence.ByID("l1"), entity.Patch{"userId": "u1"}))
	require.NoError(t, repo.UpsertByKey(ctx, persistence.ByID("l2"), entity.Patch{"userId": "u1"}))
	require.NoError(t, repo.UpsertByKey(ctx, persistence.ByID("l3"), entity.Patch{"userId": "u2"}))

	n, err := repo.DeleteByKey(ctx, persistence.ByUserID("u1"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	loans, err := repo.FindAll(ctx, persistence.Query{Filter: map[string]any{"userId": "u2"}})
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "l3", loans[0].ID)
}

func TestNotificationRepository_LimitAndOrder(t *testing.T) {
	db, opts, _ := setupTestDB(t)
	repo := NewNotificationRepository(db, opts)
	ctx := context.Background()

	times := []string{
		"2024-01-02T00:00:00.000Z",
		"2024-01-04T00:00:00.000Z",
		"2024-01-01T00:00:00.000Z",
		"2024-01-03T00:00:00.000Z",
	}
	for i, ts := range times {
		require.NoError(t, repo.UpsertByKey(ctx, persistence.ByID(ts), entity.Patch{
			"userId": "u1",
			"time":   ts,
			"read":   i%2 == 0,
		}))
	}

	notifications, err := repo.FindAll(ctx, persistence.SortedDesc("time", 2))
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, times[1], notifications[0].Time)
	assert.Equal(t, times[3], notifications[1].Time)
	assert.False(t, notifications[0].Read)
	assert.NotZero(t, notifications[0].UpdatedAt)
}

func TestLogRepository_AppendAndList(t *testing.T) {
	db, opts, _ := setupTestDB(t)
	repo := NewLogRepository(db, opts)
	ctx := context.Background()

	for _, ts := range []string{"2024-01-01T10:00:00Z", "2024-01-01T12:00:00Z", "2024-01-01T11:00:00Z"} {
		require.NoError(t, repo.Append(ctx, &entity.LogEntry{User: "admin", Time: ts, Action: "login"}))
	}
	// duplicates are kept
	require.NoError(t, repo.Append(ctx, &entity.LogEntry{User: "admin", Time: "2024-01-01T12:00:00Z", Action: "login"}))

	entries, err := repo.FindAll(ctx, persistence.SortedDesc("time", 3))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-01-01T12:00:00Z", entries[0].Time)
	assert.Equal(t, "2024-01-01T12:00:00Z", entries[1].Time)
	assert.Equal(t, "2024-01-01T11:00:00Z", entries[2].Time)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.NotEmpty(t, entries[2].ID)
}
