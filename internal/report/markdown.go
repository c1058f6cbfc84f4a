package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/bnema/ao3-blocker/internal/models"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports as Markdown tables, for sharing a
// filter setup together with what it does to a page
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format
func (w *MarkdownWriter) Write(report *Report) (int, error) {
	var sb strings.Builder
	md := markdown.NewMarkdown(&sb)

	md.H1("AO3 Blocker Report")
	md.PlainText("")

	w.writeWorks(md, report.Verdicts)

	if report.Summary != nil {
		w.writeSummary(md, report.Summary)
	}

	if err := md.Build(); err != nil {
		return 0, err
	}
	return w.write([]byte(sb.String()))
}

func (w *MarkdownWriter) writeWorks(md *markdown.Markdown, verdicts []models.Verdict) {
	md.H2("Works")
	md.PlainText("")

	if len(verdicts) == 0 {
		md.Note("No works were evaluated.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(verdicts))
	for i, v := range verdicts {
		highlighted := ""
		if v.Highlighted {
			highlighted = "yes"
		}
		rows[i] = []string{
			escapeCell(idOrPlaceholder(v)),
			escapeCell(titleOrPlaceholder(v)),
			string(v.Mode),
			highlighted,
			escapeCell(explanations(v)),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Work", "Title", "Mode", "Highlighted", "Reasons"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, s *Summary) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Mode", "Count"},
		Rows: [][]string{
			{"Visible", strconv.Itoa(s.Visible)},
			{"Placeholder", strconv.Itoa(s.Placeholder)},
			{"Hidden", strconv.Itoa(s.Hidden)},
			{"**Total**", "**" + strconv.Itoa(s.Total) + "**"},
		},
	})
	md.PlainText("")

	filters := s.Filters()
	if len(filters) == 0 {
		return
	}

	items := make([]string, len(filters))
	for i, fc := range filters {
		items[i] = "`" + string(fc.Filter) + "`: " + strconv.Itoa(fc.Count)
	}
	md.H3("By criterion")
	md.PlainText("")
	md.BulletList(items...)
	md.PlainText("")
}

func explanations(v models.Verdict) string {
	if len(v.Reasons) == 0 {
		return "-"
	}
	parts := make([]string, len(v.Reasons))
	for i, r := range v.Reasons {
		parts[i] = r.Explain()
	}
	return strings.Join(parts, "; ")
}

// escapeCell keeps user text from breaking the table layout
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
