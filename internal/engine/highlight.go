package engine

import (
	"github.com/bnema/ao3-blocker/internal/pattern"
)

// ShouldHighlight returns true if any tag matches a highlight pattern.
// It runs regardless of the block outcome.
func ShouldHighlight(tags []string, highlights []pattern.Pattern) bool {
	if len(highlights) == 0 {
		return false
	}
	for _, tag := range tags {
		if _, ok := pattern.MatchAny(tag, highlights, pattern.Substring); ok {
			return true
		}
	}
	return false
}
