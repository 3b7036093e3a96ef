package datasync

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
)

// GetSnapshot reads users, loans, notifications and settings concurrently
func (s *Service) GetSnapshot(ctx context.Context) (*entity.Snapshot, error) {
	var (
		users         []entity.User
		loans         []entity.Loan
		notifications []entity.Notification
		settings      = entity.DefaultSettings()
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		users, err = s.users.FindAll(gctx, persistence.Query{})
		if err != nil {
			return fmt.Errorf("reading users: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		loans, err = s.loans.FindAll(gctx, persistence.SortedDesc("updatedAt", 0))
		if err != nil {
			return fmt.Errorf("reading loans: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		notifications, err = s.notifications.FindAll(gctx, persistence.SortedDesc("time", s.notificationLimit))
		if err != nil {
			return fmt.Errorf("reading notifications: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		stored, err := s.settings.Get(gctx)
		switch {
		case err == nil:
			settings = *stored
		case errs.IsNotFoundError(err):
			// defaults stand until an operator writes a value
		default:
			return fmt.Errorf("reading settings: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to build snapshot", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("Snapshot built", map[string]any{
		"users":         len(users),
		"loans":         len(loans),
		"notifications": len(notifications),
	})

	return entity.NewSnapshot(users, loans, notifications, settings), nil
}
