package engine

import (
	"maps"
	"slices"
	"strings"

	"github.com/bnema/ao3-blocker/internal/logging"
	"github.com/bnema/ao3-blocker/internal/models"
	"github.com/bnema/ao3-blocker/internal/pattern"
	"github.com/rs/zerolog"
)

// Engine judges work records against an EngineConfig and keeps statistics.
// The decision itself is made by the package-level pure functions.
type Engine struct {
	stats  Stats
	logger zerolog.Logger
}

// Stats tracks evaluation statistics
type Stats struct {
	Evaluated    int
	Blocked      int
	Whitelisted  int
	Highlighted  int
	Hidden       int
	Placeholders int
	Repeats      int
	Reasons      map[models.FilterType]int // Detailed breakdown of fired criteria
}

// New creates a new engine
func New() *Engine {
	return &Engine{
		stats: Stats{
			Reasons: make(map[models.FilterType]int),
		},
		logger: logging.GetLogger("engine"),
	}
}

// Stats returns evaluation statistics
func (e *Engine) Stats() Stats {
	stats := e.stats
	stats.Reasons = maps.Clone(e.stats.Reasons)
	return stats
}

// criterion checks one rule and returns nil when it does not fire
type criterion func(work models.WorkRecord, cfg models.EngineConfig) models.Reason

// criteria run in this order after the whitelist check. Every criterion
// that fires appends its reason; none of them stops the pipeline.
var criteria = []criterion{
	checkPairing,
	checkCompletion,
	checkLanguage,
	checkCrossovers,
	checkMinWords,
	checkMaxWords,
	checkMinChapters,
	checkMaxChapters,
	checkStaleness,
	checkTags,
	checkAuthors,
	checkWorkID,
	checkTitle,
	checkSummary,
}

// Evaluate returns the ordered reasons blocking work, or nil when the work
// is whitelisted or no criterion fires
func Evaluate(work models.WorkRecord, cfg models.EngineConfig) []models.Reason {
	if Whitelisted(work, cfg) {
		return nil
	}
	return evaluateCriteria(work, cfg)
}

// Whitelisted returns true if any tag of the work exactly matches a
// whitelist pattern
func Whitelisted(work models.WorkRecord, cfg models.EngineConfig) bool {
	for _, tag := range work.Tags {
		if _, ok := pattern.MatchAny(tag, cfg.TagWhitelist, pattern.Exact); ok {
			return true
		}
	}
	return false
}

func evaluateCriteria(work models.WorkRecord, cfg models.EngineConfig) []models.Reason {
	var reasons []models.Reason
	for _, check := range criteria {
		if r := check(work, cfg); r != nil {
			reasons = append(reasons, r)
		}
	}
	return reasons
}

// Judge evaluates one work and produces its full verdict
func (e *Engine) Judge(work models.WorkRecord, cfg models.EngineConfig) models.Verdict {
	e.stats.Evaluated++

	v := models.Verdict{
		WorkID:      work.WorkID,
		Title:       work.Title,
		Highlighted: ShouldHighlight(work.Tags, cfg.TagHighlights),
	}

	if Whitelisted(work, cfg) {
		v.Whitelisted = true
		e.stats.Whitelisted++
		e.logger.Debug().
			Str("work", work.WorkID).
			Msg("Whitelisted, skipping criteria")
	} else {
		v.Reasons = evaluateCriteria(work, cfg)
	}

	v.Mode = PresentationMode(v.Reasons, cfg)

	for _, r := range v.Reasons {
		e.stats.Reasons[r.Filter()]++
		e.logger.Trace().
			Str("work", work.WorkID).
			Str("filter", string(r.Filter())).
			Str("explanation", r.Explain()).
			Msg("Criterion fired")
	}

	if v.Blocked() {
		e.stats.Blocked++
	}
	if v.Highlighted {
		e.stats.Highlighted++
	}
	switch v.Mode {
	case models.ModeHidden:
		e.stats.Hidden++
	case models.ModePlaceholder:
		e.stats.Placeholders++
	}

	return v
}

func checkPairing(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	return CheckPrimaryPairing(work.CategorizedTags, cfg)
}

func checkCompletion(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	if (cfg.BlockComplete && work.IsComplete()) || (cfg.BlockOngoing && work.IsOngoing()) {
		return models.CompletionReason{Status: work.CompletionStatus}
	}
	return nil
}

// checkLanguage never blocks a blank language, extraction gaps are common
func checkLanguage(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	if len(cfg.AllowedLanguages) == 0 {
		return nil
	}
	lang := pattern.Normalize(strings.TrimSpace(work.Language))
	if lang == "" || cfg.AllowedLanguages[lang] {
		return nil
	}
	return models.LanguageReason{Language: strings.TrimSpace(work.Language)}
}

func checkCrossovers(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	limit := cfg.MaxCrossovers
	if !limit.Set || limit.Value <= 0 || work.FandomCount <= limit.Value {
		return nil
	}
	return models.CrossoverReason{FandomCount: work.FandomCount, Limit: limit.Value}
}

func checkMinWords(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	if !cfg.MinWords.Set || work.WordCount == nil || *work.WordCount >= cfg.MinWords.Value {
		return nil
	}
	return models.WordCountReason{WordCount: *work.WordCount, Limit: cfg.MinWords.Value}
}

func checkMaxWords(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	if !cfg.MaxWords.Set || work.WordCount == nil || *work.WordCount <= cfg.MaxWords.Value {
		return nil
	}
	return models.WordCountReason{WordCount: *work.WordCount, Limit: cfg.MaxWords.Value, Max: true}
}

func checkMinChapters(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	if !cfg.MinChapters.Set || work.ChapterCurrent == nil || *work.ChapterCurrent >= cfg.MinChapters.Value {
		return nil
	}
	return models.ChapterCountReason{Chapters: *work.ChapterCurrent, Limit: cfg.MinChapters.Value}
}

func checkMaxChapters(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	if !cfg.MaxChapters.Set || work.ChapterCurrent == nil || *work.ChapterCurrent <= cfg.MaxChapters.Value {
		return nil
	}
	return models.ChapterCountReason{Chapters: *work.ChapterCurrent, Limit: cfg.MaxChapters.Value, Max: true}
}

// checkStaleness only applies to ongoing works. Complete works and works
// with an unknown status are exempt.
func checkStaleness(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	limit := cfg.MaxMonthsSinceUpdate
	if !limit.Set || !work.IsOngoing() || work.MonthsSinceUpdate == nil {
		return nil
	}
	if months := *work.MonthsSinceUpdate; months > float64(limit.Value) {
		return models.StalenessReason{Months: months, Limit: limit.Value}
	}
	return nil
}

func checkTags(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	var matched []string
	for _, tag := range work.Tags {
		if _, ok := pattern.MatchAny(tag, cfg.TagBlacklist, pattern.Substring); ok {
			matched = append(matched, tag)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	return models.TagBlacklistReason{Tags: matched}
}

// checkAuthors compares whole names only, wildcards in the list are inert
func checkAuthors(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	var matched []string
	for _, author := range work.Authors {
		if slices.Contains(cfg.AuthorBlacklist, pattern.Normalize(strings.TrimSpace(author))) {
			matched = append(matched, author)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	return models.AuthorBlacklistReason{Authors: matched}
}

func checkWorkID(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	id := strings.TrimSpace(work.WorkID)
	if id == "" || !slices.Contains(cfg.WorkIDBlacklist, id) {
		return nil
	}
	return models.WorkIDBlacklistReason{WorkID: id}
}

func checkTitle(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	if matches := findAll(work.Title, cfg.TitleBlacklist); len(matches) > 0 {
		return models.TitleBlacklistReason{Matches: matches}
	}
	return nil
}

func checkSummary(work models.WorkRecord, cfg models.EngineConfig) models.Reason {
	if matches := findAll(work.Summary, cfg.SummaryBlacklist); len(matches) > 0 {
		return models.SummaryBlacklistReason{Matches: matches}
	}
	return nil
}

// findAll returns the text each pattern found in s, in pattern order
func findAll(s string, patterns []pattern.Pattern) []string {
	if s == "" {
		return nil
	}
	var matches []string
	for _, p := range patterns {
		if m, ok := p.Find(s); ok {
			matches = append(matches, m)
		}
	}
	return matches
}
