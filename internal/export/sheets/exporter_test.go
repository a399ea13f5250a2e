package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"walletalert/internal/core"
)

func TestTransactionRow(t *testing.T) {
	date := time.Date(2026, 8, 3, 15, 30, 0, 0, time.UTC)

	t.Run("uses explicit date", func(t *testing.T) {
		row := transactionRow("u1", core.Transaction{
			ID:          "t1",
			Amount:      12.5,
			Category:    "Groceries",
			Description: "market",
			Date:        &date,
			CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		assert.Equal(t, []any{"2026-08-03", "Groceries", "market", 12.5, "u1", "t1"}, row)
	})

	t.Run("falls back to creation time", func(t *testing.T) {
		row := transactionRow("u1", core.Transaction{
			ID:        "t2",
			Amount:    5.0,
			Category:  "Transport",
			CreatedAt: date,
		})
		assert.Equal(t, "2026-08-03", row[0])
	})

	t.Run("empty date when both missing", func(t *testing.T) {
		row := transactionRow("u1", core.Transaction{ID: "t3", Amount: 1, Category: "Other"})
		assert.Equal(t, "", row[0])
	})
}
