package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/model"
)

// LoanRepository implements LoanRepository interface using GORM
type LoanRepository struct {
	loans *collection[model.Loan]
}

var _ persistence.LoanRepository = (*LoanRepository)(nil)

// NewLoanRepository creates a new LoanRepository instance
func NewLoanRepository(db *gorm.DB, opts Options) *LoanRepository {
	return &LoanRepository{
		loans: newCollection[model.Loan](db, "loan", nil, opts),
	}
}

func loanToEntity(m *model.Loan) entity.Loan {
	return entity.Loan{
		ID:              m.ID,
		UserID:          m.UserID,
		UserName:        m.UserName,
		Amount:          m.Amount,
		Date:            m.Date,
		CreatedAt:       m.CreatedAt,
		Status:          entity.LoanStatus(m.Status),
		Fine:            m.Fine,
		BillImage:       m.BillImage,
		Signature:       m.Signature,
		RejectionReason: m.RejectionReason,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FindAll returns loans matching q
func (r *LoanRepository) FindAll(ctx context.Context, q persistence.Query) ([]entity.Loan, error) {
	rows, err := r.loans.find(ctx, q)
	if err != nil {
		return nil, err
	}

	loans := make([]entity.Loan, 0, len(rows))
	for i := range rows {
		loans = append(loans, loanToEntity(&rows[i]))
	}
	return loans, nil
}

// UpsertByKey updates or inserts the loan matching key
func (r *LoanRepository) UpsertByKey(ctx context.Context, key persistence.Key, patch entity.Patch) error {
	return r.loans.upsert(ctx, key, patch)
}

// DeleteByKey removes the loans matching key
func (r *LoanRepository) DeleteByKey(ctx context.Context, key persistence.Key) (int64, error) {
	return r.loans.remove(ctx, key)
}
