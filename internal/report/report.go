package report

import (
	"github.com/bnema/ao3-blocker/internal/models"
)

// Report is one evaluation pass ready for output
type Report struct {
	Verdicts []models.Verdict
	Summary  *Summary // nil when no summary was requested
}

// Summary counts verdicts per presentation mode and per criterion
type Summary struct {
	Total       int                       `json:"total"`
	Visible     int                       `json:"visible"`
	Placeholder int                       `json:"placeholder"`
	Hidden      int                       `json:"hidden"`
	Highlighted int                       `json:"highlighted"`
	Whitelisted int                       `json:"whitelisted"`
	ByFilter    map[models.FilterType]int `json:"byFilter"`
}

// New builds a report, with a summary when withSummary is set
func New(verdicts []models.Verdict, withSummary bool) *Report {
	r := &Report{Verdicts: verdicts}
	if withSummary {
		r.Summary = NewSummary(verdicts)
	}
	return r
}

// NewSummary counts the verdicts
func NewSummary(verdicts []models.Verdict) *Summary {
	s := &Summary{
		Total:    len(verdicts),
		ByFilter: make(map[models.FilterType]int),
	}

	for _, v := range verdicts {
		switch v.Mode {
		case models.ModeHidden:
			s.Hidden++
		case models.ModePlaceholder:
			s.Placeholder++
		default:
			s.Visible++
		}
		if v.Highlighted {
			s.Highlighted++
		}
		if v.Whitelisted {
			s.Whitelisted++
		}
		for _, r := range v.Reasons {
			s.ByFilter[r.Filter()]++
		}
	}

	return s
}

// Blocked returns the number of works that got a placeholder or were hidden
func (s *Summary) Blocked() int {
	return s.Placeholder + s.Hidden
}

// FilterCount is one row of the per-criterion breakdown
type FilterCount struct {
	Filter models.FilterType
	Count  int
}

// Filters returns the non-zero criterion counts in evaluation order
func (s *Summary) Filters() []FilterCount {
	var counts []FilterCount
	for _, f := range models.FilterTypes {
		if n := s.ByFilter[f]; n > 0 {
			counts = append(counts, FilterCount{Filter: f, Count: n})
		}
	}
	return counts
}
