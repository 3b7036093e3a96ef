package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/loan-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loan-tracker/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	users *collection[model.User]
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, opts Options) *UserRepository {
	return &UserRepository{
		users: newCollection[model.User](db, "user", errs.ErrDuplicateUser, opts),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(m *model.User) entity.User {
	user := entity.User{
		ID:                m.ID,
		Phone:             m.Phone,
		FullName:          m.FullName,
		IDNumber:          m.IDNumber,
		Balance:           m.Balance,
		TotalLimit:        m.TotalLimit,
		Rank:              entity.Rank(m.Rank),
		RankProgress:      m.RankProgress,
		IsLoggedIn:        m.IsLoggedIn,
		IsAdmin:           m.IsAdmin,
		RankUpgradeBill:   m.RankUpgradeBill,
		Address:           m.Address,
		JoinDate:          m.JoinDate,
		IDFront:           m.IDFront,
		IDBack:            m.IDBack,
		RefZalo:           m.RefZalo,
		Relationship:      m.Relationship,
		LastLoanSeq:       m.LastLoanSeq,
		BankName:          m.BankName,
		BankAccountNumber: m.BankAccountNumber,
		BankAccountHolder: m.BankAccountHolder,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.PendingUpgradeRank != nil {
		rank := entity.Rank(*m.PendingUpgradeRank)
		user.PendingUpgradeRank = &rank
	}
	return user
}

// FindAll returns users matching q
func (r *UserRepository) FindAll(ctx context.Context, q persistence.Query) ([]entity.User, error) {
	rows, err := r.users.find(ctx, q)
	if err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, r.modelToEntity(&rows[i]))
	}
	return users, nil
}

// FindByKey returns the user matching key
func (r *UserRepository) FindByKey(ctx context.Context, key persistence.Key) (*entity.User, error) {
	row, err := r.users.first(ctx, key)
	if err != nil {
		return nil, err
	}
	user := r.modelToEntity(row)
	return &user, nil
}

// UpsertByKey updates or inserts the user matching key
func (r *UserRepository) UpsertByKey(ctx context.Context, key persistence.Key, patch entity.Patch) error {
	return r.users.upsert(ctx, key, patch)
}

// DeleteByKey removes the users matching key
func (r *UserRepository) DeleteByKey(ctx context.Context, key persistence.Key) (int64, error) {
	return r.users.remove(ctx, key)
}
