package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/runoshun/issue-triage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func issue(id, title string, score float64, comments int, labels string) *domain.Issue {
	i := &domain.Issue{
		ID:          id,
		Title:       title,
		Category:    "Monitoring",
		Score:       score,
		Comments:    comments,
		HasComments: true,
	}
	i.SetLabels(labels)
	return i
}

func sampleSummary() *Summary {
	return NewSummary(domain.ClassifyAll([]*domain.Issue{
		issue("thanos/1", "Add retry logic to client", 0.85, 3, `["bug","good-first-issue"]`),
		issue("flux2/2", "Help needed", 0.9, 5, ""),
		issue("argo-cd/3", "Fix null pointer in parser", 0.76, 0, "bug"),
	}))
}

func TestNewSummary(t *testing.T) {
	s := sampleSummary()

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.GoodCount)
	assert.Equal(t, 2, s.SkipCount)
	assert.Equal(t, s.Total, s.GoodCount+s.SkipCount)
	assert.Equal(t, "thanos/1", s.Good[0].ID)
	assert.Equal(t, domain.ReasonNeedsMoreInfo, s.Skipped[0].Reason)
	assert.Equal(t, domain.ReasonLowScoreNoTalk, s.Skipped[1].Reason)
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, sampleSummary(), DefaultOptions()))

	want := strings.Join([]string{
		strings.Repeat("=", 80),
		"HIGH-SCORING ISSUES FOR POTENTIAL CONTRIBUTION",
		strings.Repeat("=", 80),
		"",
		fmt.Sprintf("%-50s %-8s %-10s %-15s %s", "ISSUE", "SCORE", "COMMENTS", "CATEGORY", "LABELS"),
		strings.Repeat("-", 80),
		fmt.Sprintf("%-50s %-8s %-10s %-15s %s", "thanos/1", "0.85", "3", "Monitoring", "bug,good-first-issue"),
		"",
		strings.Repeat("=", 80),
		"GOOD ISSUES FOR CONTRIBUTION: 1",
		"SKIP THESE ISSUES: 2",
		strings.Repeat("=", 80),
		"",
		"ISSUES TO SKIP (bad for contribution):",
		"  - flux2/2 (score: 0.9): Needs more info",
		"  - argo-cd/3 (score: 0.76): Low score, no activity",
		"",
		"RECOMMENDED ACTIONS:",
		"1. Only comment on GOOD issues",
		"2. Skip issues with 'needs more info' label",
		"3. Focus on issues with clear bug/feature descriptions",
		"4. Prefer issues with some comments (indicates activity)",
		"",
	}, "\n")

	assert.Equal(t, want, buf.String())
}

func TestRenderText_SkipLimit(t *testing.T) {
	var issues []*domain.Issue
	for n := 0; n < 15; n++ {
		issues = append(issues, issue(fmt.Sprintf("p/%d", n), "Question about setup", 0.9, 1, ""))
	}
	s := NewSummary(domain.ClassifyAll(issues))

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, s, DefaultOptions()))

	out := buf.String()
	assert.Contains(t, out, "SKIP THESE ISSUES: 15")
	assert.Equal(t, 10, strings.Count(out, "  - p/"))
	assert.Contains(t, out, "  - p/9 ")
	assert.NotContains(t, out, "  - p/10 ")

	buf.Reset()
	require.NoError(t, RenderText(&buf, s, Options{SkipLimit: 20}))
	assert.Equal(t, 10, strings.Count(buf.String(), "  - p/"), "never more than ten skipped issues")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, domain.FormatJSON, sampleSummary(), DefaultOptions()))

	var got Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got.GoodCount)
	assert.Equal(t, 2, got.SkipCount)
	require.NotNil(t, got.Skipped[1].Comments)
	assert.Equal(t, 0, *got.Skipped[1].Comments)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, domain.FormatYAML, sampleSummary(), DefaultOptions()))

	var got Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, []string{"bug", "good-first-issue"}, got.Good[0].Labels)
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, "csv", sampleSummary(), DefaultOptions())

	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestRenderText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, NewSummary(nil), DefaultOptions()))

	assert.Contains(t, buf.String(), "GOOD ISSUES FOR CONTRIBUTION: 0")
	assert.Contains(t, buf.String(), "SKIP THESE ISSUES: 0")
}
