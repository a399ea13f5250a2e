package core

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Emoji values are capped at three user-perceived characters; a composed
// emoji (flag, skin tone, ZWJ sequence) counts as one.
const maxEmojiGraphemes = 3

// CategoryKey returns the uniqueness key for a category name: trimmed and
// case-folded. Two names with the same key are the same category.
func CategoryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeEmoji maps empty or nil input to nil and truncates everything else
// to the first three grapheme clusters of the trimmed value.
func NormalizeEmoji(emoji *string) *string {
	if emoji == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*emoji)
	if trimmed == "" {
		return nil
	}
	truncated := truncateGraphemes(trimmed, maxEmojiGraphemes)
	return &truncated
}

func truncateGraphemes(s string, max int) string {
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for n := 0; n < max && g.Next(); n++ {
		b.WriteString(g.Str())
	}
	return b.String()
}
