package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
)

func TestNewLogEntry(t *testing.T) {
	t.Run("Valid entry", func(t *testing.T) {
		entry, err := NewLogEntry(Patch{
			"user":   "admin",
			"time":   "2024-05-01T10:00:00.000Z",
			"action": "approve loan l-1",
			"ip":     "10.0.0.1",
		})

		require.NoError(t, err)
		assert.Equal(t, "admin", entry.User)
		assert.Equal(t, "10.0.0.1", entry.IP)
		assert.Empty(t, entry.Device)
		assert.Empty(t, entry.ID)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		testCases := []Patch{
			{"time": "t", "action": "a"},
			{"user": "u", "action": "a"},
			{"user": "u", "time": "t"},
		}

		for _, tc := range testCases {
			entry, err := NewLogEntry(tc)
			assert.ErrorIs(t, err, errs.ErrMissingLogFields)
			assert.Nil(t, entry)
		}
	})
}

func TestNewSnapshot(t *testing.T) {
	t.Run("Nil slices serialize as empty arrays", func(t *testing.T) {
		snapshot := NewSnapshot(nil, nil, nil, DefaultSettings())

		data, err := json.Marshal(snapshot)
		require.NoError(t, err)
		assert.JSONEq(t, `{"users":[],"loans":[],"notifications":[],"budget":30000000,"rankProfit":0}`, string(data))
	})

	t.Run("Carries settings values", func(t *testing.T) {
		snapshot := NewSnapshot([]User{{ID: "u-1"}}, nil, nil, Settings{Budget: 10, RankProfit: 2})

		assert.Len(t, snapshot.Users, 1)
		assert.Equal(t, float64(10), snapshot.Budget)
		assert.Equal(t, float64(2), snapshot.RankProfit)
	})
}

func TestUser_JSON(t *testing.T) {
	rank := Rank("gold")
	user := User{ID: "u-1", Phone: "0901", Rank: RankStandard, PendingUpgradeRank: &rank}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "gold", decoded["pendingUpgradeRank"])
	assert.Equal(t, "standard", decoded["rank"])
	assert.NotContains(t, decoded, "address")

	user.PendingUpgradeRank = nil
	data, err = json.Marshal(user)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pendingUpgradeRank":null`)
}
