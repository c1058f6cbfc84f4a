package pattern

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Wildcard is the only special character users can type in a rule entry
const Wildcard = "*"

// MatchMode selects how a pattern is anchored against text
type MatchMode int

const (
	// Substring matches anywhere inside the text (tags, titles, summaries)
	Substring MatchMode = iota
	// Exact matches the whole text (whitelist tags, identities)
	Exact
)

var (
	// Runs of asterisks collapse to a single wildcard
	reAsterisks = regexp.MustCompile(`\*+`)
	// Entries are separated by commas or newlines
	reSeparators = regexp.MustCompile(`[,\r\n]+`)
)

// Pattern is a compiled user entry. It is immutable once built.
type Pattern struct {
	Original    string // entry as typed by the user, trimmed
	Normalized  string // lower-cased entry
	HasWildcard bool

	exact *regexp.Regexp // anchored, only set when HasWildcard
	loose *regexp.Regexp // unanchored, only set when HasWildcard
}

// Normalize lower-cases text the same way pattern entries are normalized
func Normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}

// SplitList splits a raw comma/newline separated string into trimmed
// entries. Blank entries are dropped and counted.
func SplitList(raw string) (entries []string, dropped int) {
	if strings.TrimSpace(raw) == "" {
		return nil, 0
	}
	for _, part := range reSeparators.Split(raw, -1) {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			// "" only shows up around leading/trailing separators
			if part != "" {
				dropped++
			}
			continue
		}
		entries = append(entries, trimmed)
	}
	return entries, dropped
}

// Compile turns a single entry into a Pattern. Blank entries are rejected
// so that an empty pattern can never match everything.
func Compile(raw string) (Pattern, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Pattern{}, false
	}

	p := Pattern{
		Original:    raw,
		Normalized:  Normalize(raw),
		HasWildcard: strings.Contains(raw, Wildcard),
	}
	if !p.HasWildcard {
		return p, true
	}

	body := globToRegex(raw)
	p.exact = regexp.MustCompile(`(?is)^` + body + `$`)
	p.loose = regexp.MustCompile(`(?is)` + body)
	return p, true
}

// CompileList compiles every non-blank entry, keeping input order and
// duplicates.
func CompileList(entries []string) []Pattern {
	var patterns []Pattern
	for _, e := range entries {
		if p, ok := Compile(e); ok {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// globToRegex escapes the literal segments and joins them with .*
// Escaping happens before the wildcard is substituted.
func globToRegex(raw string) string {
	collapsed := reAsterisks.ReplaceAllString(raw, Wildcard)
	segments := strings.Split(collapsed, Wildcard)
	for i, s := range segments {
		segments[i] = regexp.QuoteMeta(s)
	}
	return strings.Join(segments, `.*`)
}

// Match reports whether text matches the pattern in the given mode
func (p Pattern) Match(text string, mode MatchMode) bool {
	if p.Normalized == "" {
		return false
	}
	if p.HasWildcard {
		if mode == Exact {
			return p.exact.MatchString(text)
		}
		return p.loose.MatchString(text)
	}

	lowered := Normalize(text)
	if mode == Exact {
		return lowered == p.Normalized
	}
	return strings.Contains(lowered, p.Normalized)
}

// Find returns the part of text the pattern matched in substring mode
func (p Pattern) Find(text string) (string, bool) {
	if p.Normalized == "" {
		return "", false
	}
	if p.HasWildcard {
		loc := p.loose.FindStringIndex(text)
		if loc == nil {
			return "", false
		}
		return text[loc[0]:loc[1]], true
	}

	if !strings.Contains(Normalize(text), p.Normalized) {
		return "", false
	}
	if start, end, ok := locate(text, p.Normalized); ok {
		return text[start:end], true
	}
	// The match only exists under context-dependent lowering
	return p.Normalized, true
}

// locate finds needle in text lowered one rune at a time and maps the match
// back to byte offsets of text. ok is false when either end of the match
// falls inside the lowering of a single rune.
func locate(text, needle string) (start, end int, ok bool) {
	caser := cases.Lower(language.Und)
	var lowered strings.Builder
	offsets := map[int]int{0: 0}
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		lowered.WriteString(caser.String(string(r)))
		i += size
		offsets[lowered.Len()] = i
	}

	idx := strings.Index(lowered.String(), needle)
	if idx < 0 {
		return 0, 0, false
	}
	start, okStart := offsets[idx]
	end, okEnd := offsets[idx+len(needle)]
	return start, end, okStart && okEnd
}

// String returns the regex source for wildcard patterns and the
// normalized text otherwise
func (p Pattern) String() string {
	if p.HasWildcard {
		return p.loose.String()
	}
	return p.Normalized
}

// MatchText is the single matching entry point used by every criterion
func MatchText(text string, p Pattern, mode MatchMode) bool {
	return p.Match(text, mode)
}

// MatchAny returns the first pattern matching text
func MatchAny(text string, patterns []Pattern, mode MatchMode) (Pattern, bool) {
	for _, p := range patterns {
		if p.Match(text, mode) {
			return p, true
		}
	}
	return Pattern{}, false
}
