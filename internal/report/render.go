package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/issue-triage/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	ruleWidth = 80
	title     = "HIGH-SCORING ISSUES FOR POTENTIAL CONTRIBUTION"
)

// Options controls text rendering.
type Options struct {
	SkipLimit int // Max skipped issues listed; 0 lists none, capped at domain.DefaultSkipLimit
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{SkipLimit: domain.DefaultSkipLimit}
}

// Render writes the summary in the given format.
func Render(w io.Writer, format string, s *Summary, opts Options) error {
	switch format {
	case domain.FormatText, "":
		return RenderText(w, s, opts)
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case domain.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

// RenderText writes the human-readable report.
// Styling is applied only when w is a terminal.
func RenderText(w io.Writer, s *Summary, opts Options) error {
	r := lipgloss.NewRenderer(w)
	heading := r.NewStyle().Bold(true)
	good := r.NewStyle().Foreground(lipgloss.Color("2"))
	muted := r.NewStyle().Foreground(lipgloss.Color("8"))

	rule := strings.Repeat("=", ruleWidth)
	var b strings.Builder

	b.WriteString(rule + "\n")
	b.WriteString(heading.Render(title) + "\n")
	b.WriteString(rule + "\n\n")

	b.WriteString(heading.Render(formatRow("ISSUE", "SCORE", "COMMENTS", "CATEGORY", "LABELS")) + "\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	for _, e := range s.Good {
		b.WriteString(formatRow(e.ID, e.ScoreText(), e.CommentsText(), e.Category, strings.Join(e.Labels, ",")) + "\n")
	}

	b.WriteString("\n" + rule + "\n")
	b.WriteString(good.Render(fmt.Sprintf("GOOD ISSUES FOR CONTRIBUTION: %d", s.GoodCount)) + "\n")
	b.WriteString(fmt.Sprintf("SKIP THESE ISSUES: %d", s.SkipCount) + "\n")
	b.WriteString(rule + "\n\n")

	b.WriteString(heading.Render("ISSUES TO SKIP (bad for contribution):") + "\n")
	limit := min(opts.SkipLimit, domain.DefaultSkipLimit)
	for i, e := range s.Skipped {
		if i >= limit {
			break
		}
		b.WriteString(muted.Render(fmt.Sprintf("  - %s (score: %s): %s", e.ID, e.ScoreText(), e.Reason)) + "\n")
	}

	b.WriteString("\n" + heading.Render("RECOMMENDED ACTIONS:") + "\n")
	for i, line := range Recommendations {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, line))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatRow lays out one table line; the last column is not padded.
func formatRow(issue, score, comments, category, labels string) string {
	return strings.TrimRight(fmt.Sprintf("%-50s %-8s %-10s %-15s %s", issue, score, comments, category, labels), " ")
}
