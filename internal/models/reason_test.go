package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterType(t *testing.T) {
	tests := []struct {
		input    string
		expected FilterType
		ok       bool
	}{
		{"tagBlacklist", FilterTagBlacklist, true},
		{"tagblacklist", FilterTagBlacklist, true},
		{" MINWORDS ", FilterMinWords, true},
		{"maxMonthsSinceUpdate", FilterStaleness, true},
		{"workIdBlacklist", FilterWorkIDBlacklist, true},
		{"showPlaceholders", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFilterType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReasonExplain(t *testing.T) {
	tests := []struct {
		name     string
		reason   Reason
		filter   FilterType
		expected string
	}{
		{
			name:     "tags",
			reason:   TagBlacklistReason{Tags: []string{"Angst", "Major Character Death"}},
			filter:   FilterTagBlacklist,
			expected: "Tags: Angst, Major Character Death",
		},
		{
			name:     "min words",
			reason:   WordCountReason{WordCount: 500, Limit: 1000},
			filter:   FilterMinWords,
			expected: "Word count: 500 < 1,000",
		},
		{
			name:     "max words",
			reason:   WordCountReason{WordCount: 250000, Limit: 100000, Max: true},
			filter:   FilterMaxWords,
			expected: "Word count: 250,000 > 100,000",
		},
		{
			name:     "max chapters",
			reason:   ChapterCountReason{Chapters: 40, Limit: 30, Max: true},
			filter:   FilterMaxChapters,
			expected: "Chapters: 40 > 30",
		},
		{
			name:     "crossovers",
			reason:   CrossoverReason{FandomCount: 4, Limit: 3},
			filter:   FilterMaxCrossovers,
			expected: "Too many fandoms: 4 (max 3)",
		},
		{
			name:     "staleness fractional",
			reason:   StalenessReason{Months: 13.5, Limit: 12},
			filter:   FilterStaleness,
			expected: "Not updated in 13.5 months (max 12)",
		},
		{
			name:     "staleness whole",
			reason:   StalenessReason{Months: 24, Limit: 12},
			filter:   FilterStaleness,
			expected: "Not updated in 24 months (max 12)",
		},
		{
			name:     "complete",
			reason:   CompletionReason{Status: StatusComplete},
			filter:   FilterBlockComplete,
			expected: "Status: Complete",
		},
		{
			name:     "ongoing",
			reason:   CompletionReason{Status: StatusOngoing},
			filter:   FilterBlockOngoing,
			expected: "Status: Ongoing",
		},
		{
			name:     "title quotes found text",
			reason:   TitleBlacklistReason{Matches: []string{"Reader"}},
			filter:   FilterTitleBlacklist,
			expected: `Title: "Reader"`,
		},
		{
			name:     "combined pairing",
			reason:   PrimaryPairingReason{MissingRelationship: true, MissingCharacter: true, Relationships: []string{"A/B"}, Characters: []string{"C"}},
			filter:   FilterPrimaryPairing,
			expected: "Primary relationship missing: A/B; Primary character missing: C",
		},
		{
			name:     "character only",
			reason:   PrimaryPairingReason{MissingCharacter: true, Characters: []string{"C"}},
			filter:   FilterPrimaryCharacters,
			expected: "Primary character missing: C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.filter, tt.reason.Filter())
			assert.Equal(t, tt.expected, tt.reason.Explain())
		})
	}
}

func TestActiveCriteria(t *testing.T) {
	cfg := DefaultEngineConfig()
	assert.Empty(t, cfg.ActiveCriteria())

	cfg.MinWords = Limit(1000)
	cfg.MaxCrossovers = Limit(0)
	cfg.PrimaryRelationships = []string{"a/b"}
	cfg.BlockOngoing = true
	assert.Equal(t, []FilterType{FilterPrimaryRelationships, FilterBlockOngoing, FilterMinWords}, cfg.ActiveCriteria())
}

func TestLimit(t *testing.T) {
	assert.Equal(t, Bound{Value: 3, Set: true}, Limit(3))
	assert.Equal(t, Unbounded, Limit(-1))
}
