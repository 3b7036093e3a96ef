package datasync

import (
	"context"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
)

// upsertFunc writes one decoded entry under key
type upsertFunc func(ctx context.Context, key persistence.Key, patch entity.Patch) error

// ApplyLoans upserts each loan of batch strictly by id
func (s *Service) ApplyLoans(ctx context.Context, batch []map[string]any) error {
	return s.applyByID(ctx, entity.LoanSchema, batch, s.loans.UpsertByKey)
}

// ApplyNotifications upserts each notification of batch strictly by id
func (s *Service) ApplyNotifications(ctx context.Context, batch []map[string]any) error {
	return s.applyByID(ctx, entity.NotificationSchema, batch, s.notifications.UpsertByKey)
}

func (s *Service) applyByID(ctx context.Context, schema *entity.Schema, batch []map[string]any, upsert upsertFunc) error {
	entries, err := schema.DecodeBatch(batch)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		if entry.ID == "" {
			return errs.NewBatchError(schema.Entity(), i, "", errs.ErrMissingMatchKey)
		}
	}

	for i, entry := range entries {
		if err := upsert(ctx, persistence.ByID(entry.ID), entry.Patch); err != nil {
			s.logger.Error("Failed to apply entry", map[string]any{
				"entity": schema.Entity(),
				"index":  i,
				"id":     entry.ID,
				"error":  err.Error(),
			})
			return errs.NewBatchError(schema.Entity(), i, entry.ID, err)
		}
	}

	s.logger.Info("Batch applied", map[string]any{
		"entity": schema.Entity(),
		"count":  len(entries),
	})
	return nil
}
