package pattern

// Entry lint
//
// Rule entries are typed by hand in a settings dialog, so a few mistakes
// come up again and again. None of them change how an entry compiles; the
// checks below only describe them so the user can fix the list.
//
// CHECKS:
// - "*", "**"        - matches every tag/title/summary it is applied to
// - "Jane*" (author) - wildcard is inert for identity fields
// - "*Angst*"        - leading/trailing wildcard adds nothing in substring fields
// - duplicates       - same entry twice, case-insensitive

import (
	"strings"
)

// FieldKind describes how a settings field uses its entries
type FieldKind int

const (
	// SubstringField entries match anywhere (tag blacklist, title, summary, highlights)
	SubstringField FieldKind = iota
	// ExactField entries match a whole tag, wildcards allowed (whitelist)
	ExactField
	// LiteralField entries are compared verbatim, wildcards are inert (authors, work IDs, primary pairings)
	LiteralField
)

// Issue describes a problem found in a rule entry
type Issue struct {
	Entry   string
	Issue   string
	Fixable bool
	Fix     string
}

// Issue descriptions
const (
	IssueMatchesEverything = "matches everything"
	IssueWildcardIgnored   = "wildcard ignored"
	IssueRedundantWildcard = "redundant wildcard"
	IssueDuplicate         = "duplicate entry"
)

// CheckEntries analyzes raw entries of one field for common mistakes
func CheckEntries(entries []string, kind FieldKind) []Issue {
	var issues []Issue
	seen := make(map[string]bool)

	for _, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}

		key := Normalize(entry)
		if seen[key] {
			issues = append(issues, Issue{
				Entry:   entry,
				Issue:   IssueDuplicate,
				Fixable: true,
			})
		}
		seen[key] = true

		if !strings.Contains(entry, Wildcard) {
			continue
		}

		if kind == LiteralField {
			issues = append(issues, Issue{
				Entry: entry,
				Issue: IssueWildcardIgnored,
			})
			continue
		}

		if strings.Trim(entry, Wildcard) == "" {
			issues = append(issues, Issue{
				Entry: entry,
				Issue: IssueMatchesEverything,
			})
			continue
		}

		if kind == SubstringField && (strings.HasPrefix(entry, Wildcard) || strings.HasSuffix(entry, Wildcard)) {
			issues = append(issues, Issue{
				Entry:   entry,
				Issue:   IssueRedundantWildcard,
				Fixable: true,
				Fix:     strings.Trim(entry, Wildcard),
			})
		}
	}

	return issues
}

// HasUnfixableIssues returns true if any issue needs a manual decision
func HasUnfixableIssues(issues []Issue) bool {
	for _, issue := range issues {
		if !issue.Fixable {
			return true
		}
	}
	return false
}

// DescribeIssues returns a human-readable description of all issues
func DescribeIssues(issues []Issue) string {
	if len(issues) == 0 {
		return ""
	}
	var parts []string
	for _, issue := range issues {
		parts = append(parts, issue.Entry+": "+issue.Issue)
	}
	return strings.Join(parts, ", ")
}
