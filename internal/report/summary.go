// Package report renders triage results for the terminal or for scripts.
package report

import (
	"github.com/runoshun/issue-triage/internal/domain"
)

// Recommendations closes every text report.
var Recommendations = []string{
	"Only comment on GOOD issues",
	"Skip issues with 'needs more info' label",
	"Focus on issues with clear bug/feature descriptions",
	"Prefer issues with some comments (indicates activity)",
}

// Entry is one issue in a report.
// Fields are ordered to minimize memory padding.
type Entry struct {
	Comments *int     `json:"comments" yaml:"comments"`
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Project  string   `json:"project,omitempty" yaml:"project,omitempty"`
	Category string   `json:"category,omitempty" yaml:"category,omitempty"`
	Reason   string   `json:"reason,omitempty" yaml:"reason,omitempty"`
	Labels   []string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Score    float64  `json:"score" yaml:"score"`
}

// Summary groups classified issues, preserving query order within each group.
type Summary struct {
	Good      []Entry `json:"good" yaml:"good"`
	Skipped   []Entry `json:"skipped" yaml:"skipped"`
	GoodCount int     `json:"good_count" yaml:"good_count"`
	SkipCount int     `json:"skip_count" yaml:"skip_count"`
	Total     int     `json:"total" yaml:"total"`
}

// NewSummary builds a Summary from classifications.
func NewSummary(results []domain.Classification) *Summary {
	s := &Summary{
		Good:    []Entry{},
		Skipped: []Entry{},
		Total:   len(results),
	}
	for _, r := range results {
		e := newEntry(r)
		if r.IsGood() {
			s.Good = append(s.Good, e)
		} else {
			s.Skipped = append(s.Skipped, e)
		}
	}
	s.GoodCount = len(s.Good)
	s.SkipCount = len(s.Skipped)
	return s
}

func newEntry(r domain.Classification) Entry {
	issue := r.Issue
	e := Entry{
		ID:       issue.ID,
		Title:    issue.Title,
		Project:  issue.Project,
		Category: issue.Category,
		Reason:   r.Reason,
		Labels:   issue.Labels,
		Score:    issue.Score,
	}
	if issue.HasComments {
		n := issue.Comments
		e.Comments = &n
	}
	return e
}

// ScoreText formats the score the way the text report shows it.
func (e Entry) ScoreText() string {
	i := domain.Issue{Score: e.Score}
	return i.ScoreText()
}

// CommentsText formats the comment count, empty when unknown.
func (e Entry) CommentsText() string {
	if e.Comments == nil {
		return ""
	}
	i := domain.Issue{Comments: *e.Comments, HasComments: true}
	return i.CommentsText()
}
