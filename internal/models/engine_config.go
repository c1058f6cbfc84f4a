package models

import (
	"github.com/bnema/ao3-blocker/internal/pattern"
)

// Default primary pairing windows
const (
	DefaultPrimaryRelPad  = 1
	DefaultPrimaryCharPad = 5
)

// Bound is an optional non-negative numeric limit
type Bound struct {
	Value int
	Set   bool
}

// Unbounded is a limit that never participates in evaluation
var Unbounded = Bound{}

// Limit returns a set bound, or Unbounded for negative input
func Limit(n int) Bound {
	if n < 0 {
		return Unbounded
	}
	return Bound{Value: n, Set: true}
}

// EngineConfig is the compiled form of the user's rules. It is produced by
// the settings normalizer and must be treated as read-only; settings
// changes produce a new EngineConfig.
type EngineConfig struct {
	TagBlacklist     []pattern.Pattern
	TagWhitelist     []pattern.Pattern
	TagHighlights    []pattern.Pattern
	TitleBlacklist   []pattern.Pattern
	SummaryBlacklist []pattern.Pattern

	AuthorBlacklist []string // lower-cased, exact match only
	WorkIDBlacklist []string

	MinWords             Bound
	MaxWords             Bound
	MinChapters          Bound
	MaxChapters          Bound
	MaxCrossovers        Bound
	MaxMonthsSinceUpdate Bound

	BlockComplete bool
	BlockOngoing  bool

	AllowedLanguages map[string]bool // lower-cased; empty allows all

	PrimaryRelationships []string // lower-cased, exact match only
	PrimaryCharacters    []string // lower-cased, exact match only
	PrimaryRelPad        int
	PrimaryCharPad       int

	ShowPlaceholders bool
	HideCompletely   map[FilterType]bool
}

// DefaultEngineConfig returns a config that blocks nothing
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		PrimaryRelPad:    DefaultPrimaryRelPad,
		PrimaryCharPad:   DefaultPrimaryCharPad,
		ShowPlaceholders: true,
		AllowedLanguages: map[string]bool{},
		HideCompletely:   map[FilterType]bool{},
	}
}

// ActiveCriteria lists the criteria that can fire under this config, in
// evaluation order
func (c EngineConfig) ActiveCriteria() []FilterType {
	var active []FilterType
	add := func(on bool, f FilterType) {
		if on {
			active = append(active, f)
		}
	}

	rel, char := len(c.PrimaryRelationships) > 0, len(c.PrimaryCharacters) > 0
	add(rel && char, FilterPrimaryPairing)
	add(rel, FilterPrimaryRelationships)
	add(char, FilterPrimaryCharacters)
	add(c.BlockComplete, FilterBlockComplete)
	add(c.BlockOngoing, FilterBlockOngoing)
	add(len(c.AllowedLanguages) > 0, FilterLanguage)
	add(c.MaxCrossovers.Set && c.MaxCrossovers.Value > 0, FilterMaxCrossovers)
	add(c.MinWords.Set, FilterMinWords)
	add(c.MaxWords.Set, FilterMaxWords)
	add(c.MinChapters.Set, FilterMinChapters)
	add(c.MaxChapters.Set, FilterMaxChapters)
	add(c.MaxMonthsSinceUpdate.Set, FilterStaleness)
	add(len(c.TagBlacklist) > 0, FilterTagBlacklist)
	add(len(c.AuthorBlacklist) > 0, FilterAuthorBlacklist)
	add(len(c.WorkIDBlacklist) > 0, FilterWorkIDBlacklist)
	add(len(c.TitleBlacklist) > 0, FilterTitleBlacklist)
	add(len(c.SummaryBlacklist) > 0, FilterSummaryBlacklist)

	return active
}
