package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across repositories so they commit or roll
// back together
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetLoanRepository returns a loan repository bound to the current transaction
	GetLoanRepository(ctx context.Context) LoanRepository

	// GetNotificationRepository returns a notification repository bound to the current transaction
	GetNotificationRepository(ctx context.Context) NotificationRepository
}
