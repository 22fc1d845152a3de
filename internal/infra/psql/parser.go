package psql

import (
	"strconv"
	"strings"

	"github.com/runoshun/issue-triage/internal/domain"
)

// Field positions in a border=2 row: "| id | title | score | ... |".
// Position 0 is the empty text before the leading frame.
const (
	fieldID = iota + 1
	fieldTitle
	fieldScore
	fieldComments
	fieldProject
	fieldCategory
	fieldLabels
)

const (
	// minFields is the fewest fields a line needs to be read as a row.
	minFields = 5
	// headerLines precede the rows (top frame and column names).
	headerLines = 2
)

// ParseTable converts psql tabular output into issues.
// The header lines and the trailing row-count footer are discarded. Lines
// with fewer than five '|' separated fields (frames, blanks) are skipped.
// A score or comment count that is not a number fails the whole parse.
func ParseTable(output string) ([]*domain.Issue, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) <= headerLines+1 {
		return nil, nil
	}

	var issues []*domain.Issue
	for i, line := range lines[headerLines : len(lines)-1] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < minFields {
			continue
		}
		issue, err := parseRow(parts, i+headerLines+1)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

func parseRow(parts []string, lineNo int) (*domain.Issue, error) {
	issue := &domain.Issue{
		ID:      strings.TrimSpace(parts[fieldID]),
		Title:   strings.TrimSpace(domain.TruncateRunes(parts[fieldTitle], domain.TitleWidth)),
		Project: optional(parts, fieldProject),
	}

	scoreText := strings.TrimSpace(parts[fieldScore])
	score, err := strconv.ParseFloat(scoreText, 64)
	if err != nil {
		return nil, &domain.FieldError{Field: "score", Value: scoreText, Line: lineNo, Err: err}
	}
	issue.Score = score

	commentsText := strings.TrimSpace(parts[fieldComments])
	if commentsText != "" {
		comments, err := strconv.Atoi(commentsText)
		if err != nil {
			return nil, &domain.FieldError{Field: "comments", Value: commentsText, Line: lineNo, Err: err}
		}
		issue.Comments = comments
		issue.HasComments = true
	}

	issue.Category = optional(parts, fieldCategory)
	issue.SetLabels(optional(parts, fieldLabels))
	return issue, nil
}

func optional(parts []string, idx int) string {
	if idx >= len(parts) {
		return ""
	}
	return strings.TrimSpace(parts[idx])
}
