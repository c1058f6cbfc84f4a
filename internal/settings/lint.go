package settings

import (
	"github.com/bnema/ao3-blocker/internal/pattern"
)

// FieldIssues groups the lint issues of one settings field
type FieldIssues struct {
	Field  string
	Issues []pattern.Issue
}

// Lint checks the list fields of a raw settings object for entry mistakes.
// Fields without issues are omitted; order follows the settings layout.
func Lint(raw map[string]any) []FieldIssues {
	n := New()
	rs := n.decode(raw)

	fields := []struct {
		name    string
		entries []string
		kind    pattern.FieldKind
	}{
		{"tagBlacklist", rs.TagBlacklist, pattern.SubstringField},
		{"tagWhitelist", rs.TagWhitelist, pattern.ExactField},
		{"tagHighlights", rs.TagHighlights, pattern.SubstringField},
		{"authorBlacklist", rs.AuthorBlacklist, pattern.LiteralField},
		{"workIdBlacklist", rs.WorkIDBlacklist, pattern.LiteralField},
		{"titleBlacklist", rs.TitleBlacklist, pattern.SubstringField},
		{"summaryBlacklist", rs.SummaryBlacklist, pattern.SubstringField},
		{"allowedLanguages", rs.AllowedLanguages, pattern.LiteralField},
		{"primaryRelationships", rs.PrimaryRelationships, pattern.LiteralField},
		{"primaryCharacters", rs.PrimaryCharacters, pattern.LiteralField},
	}

	var result []FieldIssues
	for _, f := range fields {
		issues := pattern.CheckEntries(n.entries(f.name, f.entries), f.kind)
		if len(issues) > 0 {
			result = append(result, FieldIssues{Field: f.name, Issues: issues})
		}
	}
	return result
}
