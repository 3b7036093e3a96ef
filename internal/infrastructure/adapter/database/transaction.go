package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// errNoTransaction is returned when Commit or Rollback find no transaction in the context
var errNoTransaction = errors.New("no transaction found in context")

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db         *gorm.DB
	opts       repository.Options
	classifier *repository.ErrorClassifier
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, opts repository.Options) *UnitOfWork {
	return &UnitOfWork{
		db:         db,
		opts:       opts,
		classifier: repository.NewErrorClassifier(),
	}
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.opts.Logger.Debug("Beginning database transaction", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.opts.Logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("begin transaction: %w", u.classifier.ToDomain(tx.Error, nil))
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errNoTransaction
	}

	u.opts.Logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.opts.Logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("commit transaction: %w", u.classifier.ToDomain(err, nil))
	}

	return nil
}

// Rollback rolls back the current transaction. Rolling back a finished
// transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return errNoTransaction
	}

	u.opts.Logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.opts.Logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.opts.Logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("rollback transaction: %w", u.classifier.ToDomain(err, nil))
	}

	return nil
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDbFromContext(ctx), u.opts)
}

// GetLoanRepository returns a loan repository in the current transaction
func (u *UnitOfWork) GetLoanRepository(ctx context.Context) persistence.LoanRepository {
	return repository.NewLoanRepository(u.getDbFromContext(ctx), u.opts)
}

// GetNotificationRepository returns a notification repository in the current transaction
func (u *UnitOfWork) GetNotificationRepository(ctx context.Context) persistence.NotificationRepository {
	return repository.NewNotificationRepository(u.getDbFromContext(ctx), u.opts)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db
}
