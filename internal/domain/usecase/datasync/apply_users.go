package datasync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
)

// ApplyUsers upserts each entry of batch. Every entry is validated before
// any store access; entries are then applied in order, each in its own
// transaction, so a failure leaves earlier entries committed.
func (s *Service) ApplyUsers(ctx context.Context, batch []map[string]any) error {
	entries, err := entity.UserSchema.DecodeBatch(batch)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		phone := strings.TrimSpace(entry.Patch.String("phone"))
		if entry.ID == "" && phone == "" {
			return errs.NewBatchError("user", i, "", errs.ErrMissingMatchKey)
		}
		// phone may change but never become blank
		if _, ok := entry.Patch["phone"]; ok && phone == "" {
			return errs.NewBatchError("user", i, entry.ID, errs.ErrMissingPhone)
		}
	}

	for i, entry := range entries {
		if err := s.applyUser(ctx, entry); err != nil {
			key := entry.ID
			if key == "" {
				key = entry.Patch.String("phone")
			}
			s.logger.Error("Failed to apply user entry", map[string]any{
				"index": i,
				"key":   key,
				"error": err.Error(),
			})
			return errs.NewBatchError("user", i, key, err)
		}
	}

	s.logger.Info("User batch applied", map[string]any{
		"count": len(entries),
	})
	return nil
}

// applyUser resolves the record an entry targets and upserts it in one
// transaction. An id match takes precedence over a phone match; a record
// found by phone takes the entry's id.
func (s *Service) applyUser(ctx context.Context, entry entity.Entry) (err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Warn("Rollback failed", map[string]any{"error": rbErr.Error()})
			}
		}
	}()

	repo := s.uow.GetUserRepository(txCtx)

	key, found, err := s.resolveUser(txCtx, repo, entry)
	if err != nil {
		return err
	}

	patch := make(entity.Patch, len(entry.Patch)+1)
	for k, v := range entry.Patch {
		patch[k] = v
	}
	if entry.ID != "" {
		patch["id"] = entry.ID
	}
	if _, ok := patch["phone"]; ok {
		patch["phone"] = strings.TrimSpace(patch.String("phone"))
	}

	if !found {
		if patch.String("phone") == "" {
			return errs.ErrMissingPhone
		}
		if _, ok := patch["rank"]; !ok {
			patch["rank"] = string(entity.RankStandard)
		}
	}

	if err = repo.UpsertByKey(txCtx, key, patch); err != nil {
		return err
	}

	return s.uow.Commit(txCtx)
}

// resolveUser returns the key that targets the entry's record and whether a
// stored record matched it
func (s *Service) resolveUser(ctx context.Context, repo persistence.UserRepository, entry entity.Entry) (persistence.Key, bool, error) {
	phone := strings.TrimSpace(entry.Patch.String("phone"))

	if entry.ID != "" {
		_, err := repo.FindByKey(ctx, persistence.ByID(entry.ID))
		switch {
		case err == nil:
			return persistence.ByID(entry.ID), true, nil
		case !errors.Is(err, errs.ErrNotFound):
			return persistence.Key{}, false, fmt.Errorf("looking up user by id: %w", err)
		}
	}

	if phone != "" {
		_, err := repo.FindByKey(ctx, persistence.ByPhone(phone))
		switch {
		case err == nil:
			return persistence.ByPhone(phone), true, nil
		case !errors.Is(err, errs.ErrNotFound):
			return persistence.Key{}, false, fmt.Errorf("looking up user by phone: %w", err)
		}
	}

	if entry.ID != "" {
		return persistence.ByID(entry.ID), false, nil
	}
	return persistence.ByPhone(phone), false, nil
}
