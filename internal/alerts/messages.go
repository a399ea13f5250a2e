package alerts

import (
	"encoding/json"
	"time"

	"walletalert/internal/core"
)

// OverspendMessage is published when an owner's spending inside a budget's
// own period window crosses that budget's amount. It is a fire-and-forget
// notification, not a data sync.
type OverspendMessage struct {
	OwnerID   string      `json:"ownerId"`
	BudgetID  string      `json:"budgetId"`
	Period    core.Period `json:"period"`
	Limit     float64     `json:"limit"`
	Spent     float64     `json:"spent"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewOverspendMessage builds a message from a budget and the spending that
// crossed it.
func NewOverspendMessage(ownerID string, budget core.Budget, spent float64) *OverspendMessage {
	return &OverspendMessage{
		OwnerID:   ownerID,
		BudgetID:  budget.ID,
		Period:    budget.Period,
		Limit:     budget.Amount,
		Spent:     spent,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *OverspendMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// OverspendMessageFromJSON decodes a message from JSON bytes.
func OverspendMessageFromJSON(data []byte) (*OverspendMessage, error) {
	var msg OverspendMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
