package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
)

func TestSchema_Decode(t *testing.T) {
	t.Run("Coerces known fields and extracts id", func(t *testing.T) {
		entry, err := UserSchema.Decode(map[string]any{
			"id":          "u-1",
			"phone":       "0901234567",
			"fullName":    "Tran Van A",
			"balance":     float64(1500000),
			"totalLimit":  "5000000",
			"isAdmin":     true,
			"lastLoanSeq": float64(3),
		})

		require.NoError(t, err)
		assert.Equal(t, "u-1", entry.ID)
		assert.Equal(t, "0901234567", entry.Patch["phone"])
		assert.Equal(t, float64(1500000), entry.Patch["balance"])
		assert.Equal(t, float64(5000000), entry.Patch["totalLimit"])
		assert.Equal(t, true, entry.Patch["isAdmin"])
		assert.Equal(t, int64(3), entry.Patch["lastLoanSeq"])
		assert.NotContains(t, entry.Patch, "id")
	})

	t.Run("Drops unknown and server-owned keys", func(t *testing.T) {
		entry, err := UserSchema.Decode(map[string]any{
			"phone":     "0901",
			"_id":       "65f0c2",
			"__v":       float64(0),
			"updatedAt": float64(1700000000000),
			"nickname":  "ignored",
		})

		require.NoError(t, err)
		assert.Empty(t, entry.ID)
		assert.Equal(t, []string{"phone"}, entry.Patch.Keys())
	})

	t.Run("Keeps null only for nullable fields", func(t *testing.T) {
		entry, err := UserSchema.Decode(map[string]any{
			"phone":              "0901",
			"pendingUpgradeRank": nil,
			"address":            nil,
		})

		require.NoError(t, err)
		value, ok := entry.Patch["pendingUpgradeRank"]
		assert.True(t, ok)
		assert.Nil(t, value)
		assert.NotContains(t, entry.Patch, "address")
	})

	t.Run("Numeric id becomes a string", func(t *testing.T) {
		entry, err := LoanSchema.Decode(map[string]any{"id": float64(42), "amount": float64(10)})

		require.NoError(t, err)
		assert.Equal(t, "42", entry.ID)
	})

	t.Run("Uncoercible value is a field error", func(t *testing.T) {
		_, err := LoanSchema.Decode(map[string]any{"id": "l-1", "amount": "a lot"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidField))
		assert.True(t, errs.IsClientError(err))

		var fieldErr *errs.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "amount", fieldErr.Field)
	})

	t.Run("Integer fields accept whole numbers only", func(t *testing.T) {
		entry, err := UserSchema.Decode(map[string]any{"phone": "0901", "lastLoanSeq": "7"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), entry.Patch["lastLoanSeq"])

		_, err = UserSchema.Decode(map[string]any{"phone": "0901", "lastLoanSeq": float64(3.7)})
		require.Error(t, err)
		assert.True(t, errs.IsClientError(err))

		var fieldErr *errs.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "lastLoanSeq", fieldErr.Field)
	})

	t.Run("Object in a string field is rejected", func(t *testing.T) {
		_, err := NotificationSchema.Decode(map[string]any{
			"id":    "n-1",
			"title": map[string]any{"vi": "Xin chao"},
		})

		assert.True(t, errors.Is(err, errs.ErrInvalidField))
	})
}

func TestSchema_DecodeBatch(t *testing.T) {
	t.Run("Decodes every element", func(t *testing.T) {
		entries, err := LoanSchema.DecodeBatch([]map[string]any{
			{"id": "l-1", "amount": float64(100)},
			{"id": "l-2", "status": "approved"},
		})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "l-2", entries[1].ID)
		assert.Equal(t, "approved", entries[1].Patch.String("status"))
	})

	t.Run("Null element rejects the batch", func(t *testing.T) {
		_, err := LoanSchema.DecodeBatch([]map[string]any{{"id": "l-1"}, nil})

		assert.True(t, errors.Is(err, errs.ErrInvalidBatch))
	})

	t.Run("Bad element reports its index", func(t *testing.T) {
		_, err := LoanSchema.DecodeBatch([]map[string]any{
			{"id": "l-1"},
			{"id": "l-2", "fine": "none"},
		})

		var batchErr *errs.BatchError
		require.True(t, errors.As(err, &batchErr))
		assert.Equal(t, 1, batchErr.Index)
		assert.True(t, errs.IsClientError(err))
	})

	t.Run("Empty batch is valid", func(t *testing.T) {
		entries, err := UserSchema.DecodeBatch([]map[string]any{})

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestPatch_String(t *testing.T) {
	p := Patch{"phone": "0901", "balance": float64(1)}

	assert.Equal(t, "0901", p.String("phone"))
	assert.Equal(t, "", p.String("balance"))
	assert.Equal(t, "", p.String("missing"))
}
