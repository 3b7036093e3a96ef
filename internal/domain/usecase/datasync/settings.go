package datasync

import (
	"context"
	"math"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
)

// SetBudget writes the singleton budget
func (s *Service) SetBudget(ctx context.Context, value float64) error {
	return s.setSetting(ctx, entity.SettingsBudget, value)
}

// SetRankProfit writes the singleton rank profit
func (s *Service) SetRankProfit(ctx context.Context, value float64) error {
	return s.setSetting(ctx, entity.SettingsRankProfit, value)
}

func (s *Service) setSetting(ctx context.Context, field entity.SettingsField, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewFieldError("settings", string(field), value, errs.ErrInvalidField)
	}

	if err := s.settings.Set(ctx, field, value); err != nil {
		s.logger.Error("Failed to update settings", map[string]any{
			"field": string(field),
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("Settings updated", map[string]any{
		"field": string(field),
		"value": value,
	})
	return nil
}
