package models

// PresentationMode tells the presentation layer how to render a blurb
type PresentationMode string

// Presentation modes
const (
	ModeVisible     PresentationMode = "visible"
	ModePlaceholder PresentationMode = "placeholder"
	ModeHidden      PresentationMode = "hidden"
)

// Verdict is the engine's output for one work: presentation mode, the
// ordered reasons behind it, and the independent highlight flag
type Verdict struct {
	WorkID      string
	Title       string
	Mode        PresentationMode
	Reasons     []Reason
	Highlighted bool
	Whitelisted bool
}

// Blocked returns true if at least one criterion fired
func (v Verdict) Blocked() bool {
	return len(v.Reasons) > 0
}

// Filters returns the filter type of each reason, in order
func (v Verdict) Filters() []FilterType {
	filters := make([]FilterType, len(v.Reasons))
	for i, r := range v.Reasons {
		filters[i] = r.Filter()
	}
	return filters
}
