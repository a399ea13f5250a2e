package core

import (
	"strings"
	"time"
)

const (
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

type (
	// Period is a recurring budget window. Weekly windows are Monday-aligned,
	// monthly windows start on the 1st.
	Period string

	// User is one record per owner identifier; the owner identifier is an
	// opaque string supplied by the caller (the subject of the authenticated
	// request), never generated here.
	User struct {
		ID        string    `json:"id"`
		OwnerID   string    `json:"ownerId"`
		Email     string    `json:"email,omitempty"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	Budget struct {
		ID         string    `json:"id"`
		OwnerID    string    `json:"ownerId"`
		Period     Period    `json:"period"`
		Amount     float64   `json:"amount"`
		Categories []string  `json:"categories,omitempty"`
		CreatedAt  time.Time `json:"createdAt"`
	}

	// Transaction.Category is a denormalized copy of a category name, not a
	// foreign key. Deleting or renaming a category leaves old transactions
	// untouched; callers run the existence check before writing.
	Transaction struct {
		ID          string     `json:"id"`
		OwnerID     string     `json:"ownerId"`
		Amount      float64    `json:"amount"`
		Category    string     `json:"category"`
		Date        *time.Time `json:"date,omitempty"`
		Description string     `json:"description,omitempty"`
		CreatedAt   time.Time  `json:"createdAt"`
	}

	Category struct {
		ID        string    `json:"id"`
		OwnerID   string    `json:"ownerId"`
		Name      string    `json:"name"`
		Emoji     *string   `json:"emoji"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	// BudgetUpdate carries a partial merge; nil fields are left unchanged.
	BudgetUpdate struct {
		Period     *Period
		Amount     *float64
		Categories *[]string
	}

	TransactionUpdate struct {
		Amount      *float64
		Category    *string
		Date        *time.Time
		Description *string
	}

	// CategoryUpdate only ever changes the emoji. EmojiSet records whether
	// the payload carried the emoji key at all: an explicit null clears the
	// emoji, a missing key is a validation error.
	CategoryUpdate struct {
		Emoji    *string
		EmojiSet bool
	}
)

// Valid reports whether p is one of the known period values.
func (p Period) Valid() bool {
	switch p {
	case Weekly, Monthly:
		return true
	default:
		return false
	}
}

// ParsePeriod normalizes a raw period string. Unknown values are rejected;
// use this at the caller boundary, the stores trust what they are given.
func ParsePeriod(s string) (Period, bool) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	return p, p.Valid()
}
