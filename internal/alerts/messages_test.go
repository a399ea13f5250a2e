package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletalert/internal/core"
)

func TestNewOverspendMessage(t *testing.T) {
	budget := core.Budget{
		ID:     "b-1",
		Period: core.Weekly,
		Amount: 100,
	}

	msg := NewOverspendMessage("u-1", budget, 112.5)

	assert.Equal(t, "u-1", msg.OwnerID)
	assert.Equal(t, "b-1", msg.BudgetID)
	assert.Equal(t, core.Weekly, msg.Period)
	assert.Equal(t, 100.0, msg.Limit)
	assert.Equal(t, 112.5, msg.Spent)
	assert.False(t, msg.Timestamp.IsZero())
	assert.Less(t, time.Since(msg.Timestamp), time.Second)
}

func TestOverspendMessage_JSON(t *testing.T) {
	msg := &OverspendMessage{
		OwnerID:   "u-1",
		BudgetID:  "b-1",
		Period:    core.Monthly,
		Limit:     250,
		Spent:     301.4,
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	body, err := msg.ToJSON()
	require.NoError(t, err)

	parsed, err := OverspendMessageFromJSON(body)
	require.NoError(t, err)

	assert.Equal(t, msg.OwnerID, parsed.OwnerID)
	assert.Equal(t, msg.BudgetID, parsed.BudgetID)
	assert.Equal(t, msg.Period, parsed.Period)
	assert.Equal(t, msg.Limit, parsed.Limit)
	assert.Equal(t, msg.Spent, parsed.Spent)
	assert.True(t, msg.Timestamp.Equal(parsed.Timestamp))
}

func TestOverspendMessageFromJSON_Invalid(t *testing.T) {
	_, err := OverspendMessageFromJSON([]byte(`{"limit": "not_a_number"}`))
	assert.Error(t, err)
}
