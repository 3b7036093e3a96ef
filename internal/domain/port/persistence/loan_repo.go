package persistence

import (
	"context"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
)

// LoanRepository defines methods to interact with loan records
type LoanRepository interface {
	FindAll(ctx context.Context, q Query) ([]entity.Loan, error)
	UpsertByKey(ctx context.Context, key Key, patch entity.Patch) error
	DeleteByKey(ctx context.Context, key Key) (int64, error)
}
