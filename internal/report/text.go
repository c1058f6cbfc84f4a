package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/ao3-blocker/internal/models"
	"github.com/charmbracelet/lipgloss"
)

// TextWriter outputs a styled, human-readable listing for the terminal.
// Colors are dropped automatically when output is not a terminal.
type TextWriter struct {
	baseWriter
	styles textStyles
}

type textStyles struct {
	title       lipgloss.Style
	heading     lipgloss.Style
	visible     lipgloss.Style
	placeholder lipgloss.Style
	hidden      lipgloss.Style
	highlight   lipgloss.Style
	muted       lipgloss.Style
}

// NewTextWriter creates a TextWriter that outputs to the given writer
func NewTextWriter(output io.Writer) *TextWriter {
	r := lipgloss.NewRenderer(output)
	return &TextWriter{
		baseWriter: newBaseWriter(output),
		styles: textStyles{
			title:       r.NewStyle().Bold(true),
			heading:     r.NewStyle().Bold(true).Underline(true),
			visible:     r.NewStyle().Foreground(lipgloss.Color("10")),
			placeholder: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			hidden:      r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			highlight:   r.NewStyle().Foreground(lipgloss.Color("13")),
			muted:       r.NewStyle().Foreground(lipgloss.Color("8")),
		},
	}
}

// Write outputs one block per work followed by the optional summary
func (w *TextWriter) Write(report *Report) (int, error) {
	var sb strings.Builder

	for _, v := range report.Verdicts {
		w.writeVerdict(&sb, v)
	}

	if report.Summary != nil {
		w.writeSummary(&sb, report.Summary)
	}

	return w.write([]byte(sb.String()))
}

func (w *TextWriter) writeVerdict(sb *strings.Builder, v models.Verdict) {
	line := fmt.Sprintf("%s %s %s",
		w.modeLabel(v.Mode),
		w.styles.title.Render(titleOrPlaceholder(v)),
		w.styles.muted.Render("#"+idOrPlaceholder(v)),
	)
	if v.Highlighted {
		line += " " + w.styles.highlight.Render("[highlighted]")
	}
	if v.Whitelisted {
		line += " " + w.styles.muted.Render("[whitelisted]")
	}
	sb.WriteString(line + "\n")

	for _, r := range v.Reasons {
		sb.WriteString("    - " + r.Explain() + "\n")
	}
}

func (w *TextWriter) modeLabel(mode models.PresentationMode) string {
	label := fmt.Sprintf("%-11s", strings.ToUpper(string(mode)))
	switch mode {
	case models.ModeHidden:
		return w.styles.hidden.Render(label)
	case models.ModePlaceholder:
		return w.styles.placeholder.Render(label)
	default:
		return w.styles.visible.Render(label)
	}
}

func (w *TextWriter) writeSummary(sb *strings.Builder, s *Summary) {
	sb.WriteString("\n" + w.styles.heading.Render("SUMMARY") + "\n")
	fmt.Fprintf(sb, "  Works:        %d\n", s.Total)
	fmt.Fprintf(sb, "  Visible:      %d\n", s.Visible)
	fmt.Fprintf(sb, "  Placeholder:  %d\n", s.Placeholder)
	fmt.Fprintf(sb, "  Hidden:       %d\n", s.Hidden)
	fmt.Fprintf(sb, "  Highlighted:  %d\n", s.Highlighted)
	fmt.Fprintf(sb, "  Whitelisted:  %d\n", s.Whitelisted)

	filters := s.Filters()
	if len(filters) == 0 {
		return
	}
	sb.WriteString("\n" + w.styles.heading.Render("BY CRITERION") + "\n")
	for _, fc := range filters {
		fmt.Fprintf(sb, "  %-22s %d\n", fc.Filter+":", fc.Count)
	}
}
