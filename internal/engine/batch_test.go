package engine

import (
	"testing"

	"github.com/bnema/ao3-blocker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduplicate(t *testing.T) {
	works := []models.WorkRecord{
		{WorkID: "1", Title: "first"},
		{WorkID: "2"},
		{WorkID: "1", Title: "repeat"},
		{Title: "unknown a"},
		{Title: "unknown b"},
	}

	result := Deduplicate(works)

	require.Len(t, result, 4)
	assert.Equal(t, "first", result[0].Title)
	assert.Equal(t, "2", result[1].WorkID)
	assert.Equal(t, "unknown a", result[2].Title)
	assert.Equal(t, "unknown b", result[3].Title)
}

func TestEvaluatePage(t *testing.T) {
	cfg := models.DefaultEngineConfig()
	cfg.TagBlacklist = patterns("Angst")

	works := []models.WorkRecord{
		{WorkID: "1", Tags: []string{"Angst"}},
		{WorkID: "2", Tags: []string{"Fluff"}},
		// bookmark listings can repeat a work; the first verdict is reused
		{WorkID: "1", Tags: []string{"Fluff"}},
		{Tags: []string{"Angst"}},
	}

	e := New()
	verdicts := e.EvaluatePage(works, cfg)

	require.Len(t, verdicts, 4)
	assert.Equal(t, models.ModePlaceholder, verdicts[0].Mode)
	assert.Equal(t, models.ModeVisible, verdicts[1].Mode)
	assert.Equal(t, verdicts[0], verdicts[2])
	assert.Equal(t, models.ModePlaceholder, verdicts[3].Mode)

	stats := e.Stats()
	assert.Equal(t, 3, stats.Evaluated)
	assert.Equal(t, 1, stats.Repeats)
	assert.Equal(t, 2, stats.Blocked)
	assert.Equal(t, 2, stats.Placeholders)
}
