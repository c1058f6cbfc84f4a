package report

import (
	"encoding/json"
	"io"

	"github.com/bnema/ao3-blocker/internal/errors"
	"github.com/bnema/ao3-blocker/internal/models"
)

// JSONWriter outputs one entry per work for the presentation layer
type JSONWriter struct {
	baseWriter
	indent string
}

// JSONWriterOption configures a JSONWriter
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables indented output
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type jsonReport struct {
	Works   []jsonWork `json:"works"`
	Summary *Summary   `json:"summary,omitempty"`
}

type jsonWork struct {
	WorkID      *string                 `json:"workId"`
	Title       string                  `json:"title"`
	Mode        models.PresentationMode `json:"presentationMode"`
	Highlighted bool                    `json:"highlighted"`
	Whitelisted bool                    `json:"whitelisted"`
	Reasons     []jsonReason            `json:"reasons"`
}

type jsonReason struct {
	FilterType  models.FilterType `json:"filterType"`
	Explanation string            `json:"explanation"`
	Details     models.Reason     `json:"details"`
}

// Write outputs the report as a single JSON document
func (w *JSONWriter) Write(report *Report) (int, error) {
	out := jsonReport{
		Works:   make([]jsonWork, len(report.Verdicts)),
		Summary: report.Summary,
	}

	for i, v := range report.Verdicts {
		work := jsonWork{
			Title:       v.Title,
			Mode:        v.Mode,
			Highlighted: v.Highlighted,
			Whitelisted: v.Whitelisted,
			Reasons:     make([]jsonReason, len(v.Reasons)),
		}
		if v.WorkID != "" {
			id := v.WorkID
			work.WorkID = &id
		}
		for j, r := range v.Reasons {
			work.Reasons[j] = jsonReason{
				FilterType:  r.Filter(),
				Explanation: r.Explain(),
				Details:     r,
			}
		}
		out.Works[i] = work
	}

	var data []byte
	var err error
	if w.indent != "" {
		data, err = json.MarshalIndent(out, "", w.indent)
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrInternal, "failed to encode report")
	}

	return w.write(append(data, '\n'))
}
