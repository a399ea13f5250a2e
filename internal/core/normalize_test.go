package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCategoryKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims and lowercases", "  Transit  ", "transit"},
		{"already normalized", "groceries", "groceries"},
		{"mixed case", "GrOcErIeS", "groceries"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryKey(tt.in))
		})
	}
}

func TestNormalizeEmoji(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{"nil stays nil", nil, nil},
		{"empty becomes nil", strPtr(""), nil},
		{"whitespace becomes nil", strPtr("   "), nil},
		{"single emoji kept", strPtr("🚌"), strPtr("🚌")},
		{"trimmed", strPtr(" 🚌 "), strPtr("🚌")},
		{"three emoji kept", strPtr("🚌🚗🚕"), strPtr("🚌🚗🚕")},
		{"truncated to three clusters", strPtr("🚌🚗🚕🚙🛺"), strPtr("🚌🚗🚕")},
		// One flag is two code points but a single grapheme cluster.
		{"flags count as one cluster each", strPtr("🇮🇹🇫🇷🇩🇪🇪🇸"), strPtr("🇮🇹🇫🇷🇩🇪")},
		// Skin tone modifier stays attached to its base.
		{"modifier sequences survive truncation", strPtr("👍🏽👍🏽👍🏽👍🏽"), strPtr("👍🏽👍🏽👍🏽")},
		{"plain text is truncated too", strPtr("abcdef"), strPtr("abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeEmoji(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}
