package engine

import (
	"time"

	"github.com/bnema/ao3-blocker/internal/logging"
	"github.com/bnema/ao3-blocker/internal/models"
)

// Deduplicate removes repeated works based on their work ID. Works with an
// unknown ID are always kept.
func Deduplicate(works []models.WorkRecord) []models.WorkRecord {
	seen := make(map[string]bool)
	result := make([]models.WorkRecord, 0, len(works))

	for _, w := range works {
		if w.WorkID != "" {
			if seen[w.WorkID] {
				continue
			}
			seen[w.WorkID] = true
		}
		result = append(result, w)
	}

	return result
}

// EvaluatePage judges every work of one page, in order. A work ID seen
// earlier on the page is marked processed and reuses the first verdict.
func (e *Engine) EvaluatePage(works []models.WorkRecord, cfg models.EngineConfig) []models.Verdict {
	start := time.Now()
	defer logging.LogDuration(e.logger, start, "evaluate page")

	processed := make(map[string]models.Verdict)
	verdicts := make([]models.Verdict, 0, len(works))

	for _, w := range works {
		if w.WorkID != "" {
			if v, ok := processed[w.WorkID]; ok {
				e.stats.Repeats++
				verdicts = append(verdicts, v)
				continue
			}
		}

		v := e.Judge(w, cfg)
		if w.WorkID != "" {
			processed[w.WorkID] = v
		}
		verdicts = append(verdicts, v)
	}

	e.logger.Info().
		Int("works", len(works)).
		Int("blocked", e.stats.Blocked).
		Int("repeats", e.stats.Repeats).
		Msg("Page evaluated")

	return verdicts
}
