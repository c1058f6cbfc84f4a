package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FilterType identifies the criterion that produced a block reason.
// The string values double as hideCompletelyRules keys.
type FilterType string

const (
	FilterPrimaryPairing       FilterType = "primaryPairing"
	FilterPrimaryRelationships FilterType = "primaryRelationships"
	FilterPrimaryCharacters    FilterType = "primaryCharacters"
	FilterBlockComplete        FilterType = "blockComplete"
	FilterBlockOngoing         FilterType = "blockOngoing"
	FilterLanguage             FilterType = "allowedLanguages"
	FilterMaxCrossovers        FilterType = "maxCrossovers"
	FilterMinWords             FilterType = "minWords"
	FilterMaxWords             FilterType = "maxWords"
	FilterMinChapters          FilterType = "minChapters"
	FilterMaxChapters          FilterType = "maxChapters"
	FilterStaleness            FilterType = "maxMonthsSinceUpdate"
	FilterTagBlacklist         FilterType = "tagBlacklist"
	FilterAuthorBlacklist      FilterType = "authorBlacklist"
	FilterWorkIDBlacklist      FilterType = "workIdBlacklist"
	FilterTitleBlacklist       FilterType = "titleBlacklist"
	FilterSummaryBlacklist     FilterType = "summaryBlacklist"
)

// FilterTypes lists every criterion in evaluation order
var FilterTypes = []FilterType{
	FilterPrimaryPairing,
	FilterPrimaryRelationships,
	FilterPrimaryCharacters,
	FilterBlockComplete,
	FilterBlockOngoing,
	FilterLanguage,
	FilterMaxCrossovers,
	FilterMinWords,
	FilterMaxWords,
	FilterMinChapters,
	FilterMaxChapters,
	FilterStaleness,
	FilterTagBlacklist,
	FilterAuthorBlacklist,
	FilterWorkIDBlacklist,
	FilterTitleBlacklist,
	FilterSummaryBlacklist,
}

var filterTypeIndex = func() map[string]FilterType {
	m := make(map[string]FilterType, len(FilterTypes))
	for _, f := range FilterTypes {
		m[strings.ToLower(string(f))] = f
	}
	return m
}()

// ParseFilterType resolves a criterion identifier, ignoring case
func ParseFilterType(s string) (FilterType, bool) {
	f, ok := filterTypeIndex[strings.ToLower(strings.TrimSpace(s))]
	return f, ok
}

// Reason is one structured finding. The concrete types below are the only
// implementations; switch on them to render reason-specific output.
type Reason interface {
	Filter() FilterType
	Explain() string
	isReason()
}

var printer = message.NewPrinter(language.English)

// PrimaryPairingReason reports preferred pairings/characters missing from
// the leading tags of their category
type PrimaryPairingReason struct {
	MissingRelationship bool     `json:"missingRelationship"`
	MissingCharacter    bool     `json:"missingCharacter"`
	Relationships       []string `json:"relationships,omitempty"`
	Characters          []string `json:"characters,omitempty"`
}

// CompletionReason reports a blocked completion status
type CompletionReason struct {
	Status CompletionStatus `json:"status"`
}

// LanguageReason reports a language outside the allow-list
type LanguageReason struct {
	Language string `json:"language"`
}

// CrossoverReason reports too many fandoms
type CrossoverReason struct {
	FandomCount int `json:"fandomCount"`
	Limit       int `json:"limit"`
}

// WordCountReason reports a word count outside the configured bounds
type WordCountReason struct {
	WordCount int  `json:"wordCount"`
	Limit     int  `json:"limit"`
	Max       bool `json:"max"`
}

// ChapterCountReason reports a chapter count outside the configured bounds
type ChapterCountReason struct {
	Chapters int  `json:"chapters"`
	Limit    int  `json:"limit"`
	Max      bool `json:"max"`
}

// StalenessReason reports an ongoing work not updated recently enough
type StalenessReason struct {
	Months float64 `json:"months"`
	Limit  int     `json:"limit"`
}

// TagBlacklistReason carries every blacklisted tag found on the work
type TagBlacklistReason struct {
	Tags []string `json:"tags"`
}

// AuthorBlacklistReason carries every blacklisted author of the work
type AuthorBlacklistReason struct {
	Authors []string `json:"authors"`
}

// WorkIDBlacklistReason reports a blacklisted work ID
type WorkIDBlacklistReason struct {
	WorkID string `json:"workId"`
}

// TitleBlacklistReason carries the text found in the title
type TitleBlacklistReason struct {
	Matches []string `json:"matches"`
}

// SummaryBlacklistReason carries the text found in the summary
type SummaryBlacklistReason struct {
	Matches []string `json:"matches"`
}

func (r PrimaryPairingReason) Filter() FilterType {
	switch {
	case r.MissingRelationship && r.MissingCharacter:
		return FilterPrimaryPairing
	case r.MissingCharacter:
		return FilterPrimaryCharacters
	default:
		return FilterPrimaryRelationships
	}
}

func (r PrimaryPairingReason) Explain() string {
	var parts []string
	if r.MissingRelationship {
		parts = append(parts, "Primary relationship missing: "+strings.Join(r.Relationships, ", "))
	}
	if r.MissingCharacter {
		parts = append(parts, "Primary character missing: "+strings.Join(r.Characters, ", "))
	}
	return strings.Join(parts, "; ")
}

func (r CompletionReason) Filter() FilterType {
	if r.Status == StatusComplete {
		return FilterBlockComplete
	}
	return FilterBlockOngoing
}

func (r CompletionReason) Explain() string {
	if r.Status == StatusComplete {
		return "Status: Complete"
	}
	return "Status: Ongoing"
}

func (r LanguageReason) Filter() FilterType { return FilterLanguage }

func (r LanguageReason) Explain() string {
	return "Language: " + r.Language
}

func (r CrossoverReason) Filter() FilterType { return FilterMaxCrossovers }

func (r CrossoverReason) Explain() string {
	return printer.Sprintf("Too many fandoms: %d (max %d)", r.FandomCount, r.Limit)
}

func (r WordCountReason) Filter() FilterType {
	if r.Max {
		return FilterMaxWords
	}
	return FilterMinWords
}

func (r WordCountReason) Explain() string {
	if r.Max {
		return printer.Sprintf("Word count: %d > %d", r.WordCount, r.Limit)
	}
	return printer.Sprintf("Word count: %d < %d", r.WordCount, r.Limit)
}

func (r ChapterCountReason) Filter() FilterType {
	if r.Max {
		return FilterMaxChapters
	}
	return FilterMinChapters
}

func (r ChapterCountReason) Explain() string {
	if r.Max {
		return printer.Sprintf("Chapters: %d > %d", r.Chapters, r.Limit)
	}
	return printer.Sprintf("Chapters: %d < %d", r.Chapters, r.Limit)
}

func (r StalenessReason) Filter() FilterType { return FilterStaleness }

func (r StalenessReason) Explain() string {
	return printer.Sprintf("Not updated in %s months (max %d)", formatMonths(r.Months), r.Limit)
}

func (r TagBlacklistReason) Filter() FilterType { return FilterTagBlacklist }

func (r TagBlacklistReason) Explain() string {
	return "Tags: " + strings.Join(r.Tags, ", ")
}

func (r AuthorBlacklistReason) Filter() FilterType { return FilterAuthorBlacklist }

func (r AuthorBlacklistReason) Explain() string {
	return "Author: " + strings.Join(r.Authors, ", ")
}

func (r WorkIDBlacklistReason) Filter() FilterType { return FilterWorkIDBlacklist }

func (r WorkIDBlacklistReason) Explain() string {
	return "Work ID: " + r.WorkID
}

func (r TitleBlacklistReason) Filter() FilterType { return FilterTitleBlacklist }

func (r TitleBlacklistReason) Explain() string {
	return "Title: " + quoteAll(r.Matches)
}

func (r SummaryBlacklistReason) Filter() FilterType { return FilterSummaryBlacklist }

func (r SummaryBlacklistReason) Explain() string {
	return "Summary: " + quoteAll(r.Matches)
}

func (PrimaryPairingReason) isReason()   {}
func (CompletionReason) isReason()       {}
func (LanguageReason) isReason()         {}
func (CrossoverReason) isReason()        {}
func (WordCountReason) isReason()        {}
func (ChapterCountReason) isReason()     {}
func (StalenessReason) isReason()        {}
func (TagBlacklistReason) isReason()     {}
func (AuthorBlacklistReason) isReason()  {}
func (WorkIDBlacklistReason) isReason()  {}
func (TitleBlacklistReason) isReason()   {}
func (SummaryBlacklistReason) isReason() {}

func formatMonths(m float64) string {
	if m == float64(int64(m)) {
		return printer.Sprintf("%d", int64(m))
	}
	return fmt.Sprintf("%.1f", m)
}

func quoteAll(matches []string) string {
	quoted := make([]string, len(matches))
	for i, m := range matches {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return strings.Join(quoted, ", ")
}
