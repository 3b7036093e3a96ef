package datasync

import (
	"context"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
)

// DeleteUser removes the user's loans and notifications, then the user,
// in one transaction. Deleting an unknown id succeeds.
func (s *Service) DeleteUser(ctx context.Context, userID string) (err error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", errs.ErrMissingMatchKey)
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Warn("Rollback failed", map[string]any{"error": rbErr.Error()})
			}
			s.logger.Error("Failed to delete user", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}()

	loans, err := s.uow.GetLoanRepository(txCtx).DeleteByKey(txCtx, persistence.ByUserID(userID))
	if err != nil {
		return fmt.Errorf("deleting loans: %w", err)
	}

	notifications, err := s.uow.GetNotificationRepository(txCtx).DeleteByKey(txCtx, persistence.ByUserID(userID))
	if err != nil {
		return fmt.Errorf("deleting notifications: %w", err)
	}

	users, err := s.uow.GetUserRepository(txCtx).DeleteByKey(txCtx, persistence.ByID(userID))
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	if err = s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("User deleted", map[string]any{
		"user_id":       userID,
		"users":         users,
		"loans":         loans,
		"notifications": notifications,
	})
	return nil
}
