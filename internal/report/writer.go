package report

import (
	"io"

	"github.com/bnema/ao3-blocker/internal/errors"
	"github.com/bnema/ao3-blocker/internal/models"
)

// Writer defines the interface for report output.
// Implementations render the verdict triple of every work.
type Writer interface {
	// Write outputs the report and returns the number of bytes written
	Write(report *Report) (int, error)
}

// baseWriter provides common functionality for report writers
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

func (b baseWriter) write(p []byte) (int, error) {
	n, err := b.output.Write(p)
	if err != nil {
		return n, errors.Wrap(err, errors.ErrOutputWrite, "failed to write report")
	}
	return n, nil
}

// NewWriter returns the writer for a report format
func NewWriter(format string, output io.Writer) (Writer, error) {
	switch format {
	case models.FormatText, "":
		return NewTextWriter(output), nil
	case models.FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case models.FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format: %s", format).
			WithDetail("formats", models.Formats)
	}
}

// titleOrPlaceholder keeps untitled works readable in every format
func titleOrPlaceholder(v models.Verdict) string {
	if v.Title == "" {
		return "(untitled)"
	}
	return v.Title
}

func idOrPlaceholder(v models.Verdict) string {
	if v.WorkID == "" {
		return "-"
	}
	return v.WorkID
}
