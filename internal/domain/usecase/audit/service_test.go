package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
	mockcore "github.com/amirhossein-jamali/loan-tracker/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/loan-tracker/mocks/port/persistence"
)

func newTestService(t *testing.T) (*Service, *mockpersistence.MockLogRepository, *mockcore.MockIDGenerator) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	repo := mockpersistence.NewMockLogRepository(t)
	ids := mockcore.NewMockIDGenerator(t)
	return NewAuditService(repo, ids, mockLogger), repo, ids
}

func TestService_ListLogs(t *testing.T) {
	t.Run("Returns newest first up to the cap", func(t *testing.T) {
		service, repo, _ := newTestService(t)
		repo.EXPECT().FindAll(mock.Anything, persistence.SortedDesc("time", DefaultListLimit)).
			Return([]entity.LogEntry{{ID: "2", Time: "2024-05-02"}, {ID: "1", Time: "2024-05-01"}}, nil)

		logs, err := service.ListLogs(context.Background())

		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "2", logs[0].ID)
	})

	t.Run("Empty store returns an empty slice", func(t *testing.T) {
		service, repo, _ := newTestService(t)
		service.WithListLimit(10)
		repo.EXPECT().FindAll(mock.Anything, persistence.SortedDesc("time", 10)).Return(nil, nil)

		logs, err := service.ListLogs(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, logs)
		assert.Empty(t, logs)
	})

	t.Run("Store failure is returned", func(t *testing.T) {
		service, repo, _ := newTestService(t)
		repo.EXPECT().FindAll(mock.Anything, mock.Anything).Return(nil, errs.ErrDatabaseConnection)

		_, err := service.ListLogs(context.Background())

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestService_AppendLog(t *testing.T) {
	t.Run("Stores entry with a generated id", func(t *testing.T) {
		service, repo, ids := newTestService(t)
		ids.EXPECT().NewID().Return("log-1")
		repo.EXPECT().Append(mock.Anything, &entity.LogEntry{
			ID:     "log-1",
			User:   "admin",
			Time:   "2024-05-01T10:00:00.000Z",
			Action: "delete user u-1",
			Device: "iPhone",
		}).Return(nil)

		err := service.AppendLog(context.Background(), map[string]any{
			"id":     "client-chosen",
			"user":   "admin",
			"time":   "2024-05-01T10:00:00.000Z",
			"action": "delete user u-1",
			"device": "iPhone",
		})

		require.NoError(t, err)
	})

	t.Run("Missing action is a client error", func(t *testing.T) {
		service, _, _ := newTestService(t)

		err := service.AppendLog(context.Background(), map[string]any{
			"user": "admin",
			"time": "2024-05-01T10:00:00.000Z",
		})

		assert.ErrorIs(t, err, errs.ErrMissingLogFields)
		assert.True(t, errs.IsClientError(err))
	})

	t.Run("Nil body is a client error", func(t *testing.T) {
		service, _, _ := newTestService(t)

		assert.True(t, errs.IsClientError(service.AppendLog(context.Background(), nil)))
	})
}
