package engine

import (
	"testing"

	"github.com/bnema/ao3-blocker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPresentationMode(t *testing.T) {
	tagReason := models.TagBlacklistReason{Tags: []string{"Angst"}}
	wordReason := models.WordCountReason{WordCount: 500, Limit: 1000}
	bothMiss := models.PrimaryPairingReason{MissingRelationship: true, MissingCharacter: true}

	tests := []struct {
		name         string
		reasons      []models.Reason
		placeholders bool
		hide         map[models.FilterType]bool
		expected     models.PresentationMode
	}{
		{
			name:         "no reasons",
			reasons:      nil,
			placeholders: false,
			expected:     models.ModeVisible,
		},
		{
			name:         "placeholder by default",
			reasons:      []models.Reason{wordReason},
			placeholders: true,
			expected:     models.ModePlaceholder,
		},
		{
			name:         "placeholders switched off",
			reasons:      []models.Reason{wordReason},
			placeholders: false,
			expected:     models.ModeHidden,
		},
		{
			name:         "hide rule for the only reason",
			reasons:      []models.Reason{tagReason},
			placeholders: true,
			hide:         map[models.FilterType]bool{models.FilterTagBlacklist: true},
			expected:     models.ModeHidden,
		},
		{
			name:         "one hide rule dominates",
			reasons:      []models.Reason{wordReason, tagReason},
			placeholders: true,
			hide:         map[models.FilterType]bool{models.FilterTagBlacklist: true},
			expected:     models.ModeHidden,
		},
		{
			name:         "hide rule set to false",
			reasons:      []models.Reason{tagReason},
			placeholders: true,
			hide:         map[models.FilterType]bool{models.FilterTagBlacklist: false},
			expected:     models.ModePlaceholder,
		},
		{
			name:         "combined pairing miss honors either half",
			reasons:      []models.Reason{bothMiss},
			placeholders: true,
			hide:         map[models.FilterType]bool{models.FilterPrimaryCharacters: true},
			expected:     models.ModeHidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.DefaultEngineConfig()
			cfg.ShowPlaceholders = tt.placeholders
			if tt.hide != nil {
				cfg.HideCompletely = tt.hide
			}
			assert.Equal(t, tt.expected, PresentationMode(tt.reasons, cfg))
		})
	}
}

func TestShouldHighlight(t *testing.T) {
	highlights := patterns("Slow Burn", "Enemies to *")

	assert.True(t, ShouldHighlight([]string{"Fluff", "slow burn"}, highlights))
	assert.True(t, ShouldHighlight([]string{"Enemies to Lovers"}, highlights))
	assert.False(t, ShouldHighlight([]string{"Fluff"}, highlights))
	assert.False(t, ShouldHighlight([]string{"Slow Burn"}, nil))
	assert.False(t, ShouldHighlight(nil, highlights))
}
