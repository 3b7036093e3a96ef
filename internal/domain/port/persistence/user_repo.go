package persistence

import (
	"context"

	"github.com/amirhossein-jamali/loan-tracker/internal/domain/entity"
)

// UserRepository defines methods to interact with user records
type UserRepository interface {
	// FindAll returns users matching the query
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	FindAll(ctx context.Context, q Query) ([]entity.User, error)

	// FindByKey returns the user matching key
	//
	// Possible errors:
	// - ErrNotFound: If no user matches
	// - ErrDatabaseConnection: If database connection fails
	FindByKey(ctx context.Context, key Key) (*entity.User, error)

	// UpsertByKey updates the user matching key with patch, or inserts a new one
	// carrying key and patch. The write stamp always advances.
	//
	// Possible errors:
	// - ErrDuplicateUser: If the write would give two users the same phone
	// - ErrDatabaseConnection: If database connection fails
	UpsertByKey(ctx context.Context, key Key, patch entity.Patch) error

	// DeleteByKey removes the users matching key and returns how many were removed
	DeleteByKey(ctx context.Context, key Key) (int64, error)
}
