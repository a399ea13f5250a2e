package core

import (
	"math"
	"time"
)

// PeriodTotals buckets spending by budget period.
type PeriodTotals struct {
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}

// PeriodStart returns the start of the window containing now, in now's
// location: the most recent Monday at midnight for weekly, the 1st of the
// current month at midnight otherwise. Unknown periods follow the monthly
// rule.
func PeriodStart(p Period, now time.Time) time.Time {
	switch p {
	case Weekly:
		back := (int(now.Weekday()) + 6) % 7
		day := now.AddDate(0, 0, -back)
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// FilterByPeriod keeps transactions dated on or after PeriodStart(p, now).
// A transaction without an explicit date falls back to its creation time;
// one with neither is dropped.
func FilterByPeriod(txs []Transaction, p Period, now time.Time) []Transaction {
	start := PeriodStart(p, now)
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		ts, ok := effectiveDate(tx)
		if !ok {
			continue
		}
		if !ts.Before(start) {
			out = append(out, tx)
		}
	}
	return out
}

func effectiveDate(tx Transaction) (time.Time, bool) {
	if tx.Date != nil && !tx.Date.IsZero() {
		return *tx.Date, true
	}
	if !tx.CreatedAt.IsZero() {
		return tx.CreatedAt, true
	}
	return time.Time{}, false
}

// ActivePeriod is the most restrictive period present among the budgets:
// weekly when any budget uses it, monthly otherwise (including when there
// are no budgets at all).
func ActivePeriod(budgets []Budget) Period {
	for _, b := range budgets {
		if b.Period == Weekly {
			return Weekly
		}
	}
	return Monthly
}

// CurrentPeriodSpending sums countable transaction amounts inside the active
// period. Amounts that are not finite or not strictly positive are skipped
// silently, never reported as errors.
func CurrentPeriodSpending(txs []Transaction, budgets []Budget, now time.Time) float64 {
	var total float64
	for _, tx := range FilterByPeriod(txs, ActivePeriod(budgets), now) {
		if countable(tx.Amount) {
			total += tx.Amount
		}
	}
	return total
}

// SpendingByPeriod filters transactions by each budget's own period and
// accumulates into that period's bucket. A budget without a valid period
// counts as monthly.
func SpendingByPeriod(txs []Transaction, budgets []Budget, now time.Time) PeriodTotals {
	var totals PeriodTotals
	for _, b := range budgets {
		p := b.Period
		if p != Weekly {
			p = Monthly
		}
		var sum float64
		for _, tx := range FilterByPeriod(txs, p, now) {
			if countable(tx.Amount) {
				sum += tx.Amount
			}
		}
		if p == Weekly {
			totals.Weekly += sum
		} else {
			totals.Monthly += sum
		}
	}
	return totals
}

func countable(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 1) && !math.IsNaN(amount)
}
