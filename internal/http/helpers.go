package http

import (
	"math"
	"strings"
	"time"
)

// validAmount rejects the values the boundary must never let through:
// non-positive numbers, infinities and NaN.
func validAmount(a float64) bool {
	return a > 0 && !math.IsInf(a, 0) && !math.IsNaN(a)
}

// parseDate accepts a calendar date (2006-01-02) or a full RFC 3339
// timestamp.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
