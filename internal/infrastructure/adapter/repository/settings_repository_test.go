package repository

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/model"
)

func TestSettingsRepository_GetMissing(t *testing.T) {
	db, opts, _ := setupTestDB(t)
	repo := NewSettingsRepository(db, opts)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSettingsRepository_EnsureDefaultsOnce(t *testing.T) {
	db, opts, _ := setupTestDB(t)
	repo := NewSettingsRepository(db, opts)
	ctx := context.Background()

	created, err := repo.EnsureDefaults(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	require.NoError(t, repo.Set(ctx, entity.SettingsBudget, 5))

	created, err = repo.EnsureDefaults(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, settings.Budget)
	assert.Equal(t, entity.DefaultRankProfit, settings.RankProfit)
}

func TestSettingsRepository_SetWithoutRowKeepsOtherDefault(t *testing.T) {
	db, opts, _ := setupTestDB(t)
	repo := NewSettingsRepository(db, opts)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, entity.SettingsRankProfit, 0.05))

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultBudget, settings.Budget)
	assert.Equal(t, 0.05, settings.RankProfit)
}

func TestSettingsRepository_ConcurrentSetsKeepOneRow(t *testing.T) {
	db, opts, _ := setupTestDB(t)
	repo := NewSettingsRepository(db, opts)
	ctx := context.Background()

	var wg sync.WaitGroup
	errCh := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			field := entity.SettingsBudget
			if rand.Intn(2) == 0 {
				field = entity.SettingsRankProfit
			}
			errCh <- repo.Set(ctx, field, v)
		}(float64(i))
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&model.SystemSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSettingsRepository_UnknownField(t *testing.T) {
	db, opts, _ := setupTestDB(t)
	repo := NewSettingsRepository(db, opts)

	err := repo.Set(context.Background(), entity.SettingsField("nope"), 1)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
