package models

// CompletionStatus is the work's completion state as shown on its blurb
type CompletionStatus string

// Completion status values. The zero value means the extractor could not tell.
const (
	StatusUnknown  CompletionStatus = ""
	StatusComplete CompletionStatus = "complete"
	StatusOngoing  CompletionStatus = "ongoing"
)

// CategorizedTags groups a work's tags the way the archive lists them
type CategorizedTags struct {
	Ratings       []string `json:"rating,omitempty" yaml:"rating,omitempty"`
	Warnings      []string `json:"warning,omitempty" yaml:"warning,omitempty"`
	Categories    []string `json:"category,omitempty" yaml:"category,omitempty"`
	Fandoms       []string `json:"fandom,omitempty" yaml:"fandom,omitempty"`
	Relationships []string `json:"relationship,omitempty" yaml:"relationship,omitempty"`
	Characters    []string `json:"character,omitempty" yaml:"character,omitempty"`
	Freeforms     []string `json:"freeform,omitempty" yaml:"freeform,omitempty"`
}

// WorkRecord holds the facts about one work or bookmark blurb.
// Pointer fields are nil when the extractor could not resolve them.
type WorkRecord struct {
	Authors           []string         `json:"authors" yaml:"authors"`
	Title             string           `json:"title" yaml:"title"`
	Tags              []string         `json:"tags" yaml:"tags"`
	CategorizedTags   CategorizedTags  `json:"categorizedTags" yaml:"categorizedTags"`
	Summary           string           `json:"summary" yaml:"summary"`
	Language          string           `json:"language" yaml:"language"`
	FandomCount       int              `json:"fandomCount" yaml:"fandomCount"`
	WordCount         *int             `json:"wordCount" yaml:"wordCount"`
	CompletionStatus  CompletionStatus `json:"completionStatus" yaml:"completionStatus"`
	ChapterCurrent    *int             `json:"chapterCurrent" yaml:"chapterCurrent"`
	ChapterTotal      *int             `json:"chapterTotal" yaml:"chapterTotal"`
	MonthsSinceUpdate *float64         `json:"monthsSinceUpdate" yaml:"monthsSinceUpdate"`
	WorkID            string           `json:"workId" yaml:"workId"` // "" when unknown
}

// IsComplete returns true if the work is known to be complete
func (w WorkRecord) IsComplete() bool {
	return w.CompletionStatus == StatusComplete
}

// IsOngoing returns true if the work is known to be a work in progress
func (w WorkRecord) IsOngoing() bool {
	return w.CompletionStatus == StatusOngoing
}
