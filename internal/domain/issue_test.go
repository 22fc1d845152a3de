package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLabels(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"null", nil},
		{`["bug","Good First Issue"]`, []string{"bug", "good first issue"}},
		{"[]", nil},
		{"bug, help wanted ,", []string{"bug", "help wanted"}},
		{"[not json", []string{"[not json"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLabels(tt.input))
		})
	}
}

func TestIssue_SetLabels(t *testing.T) {
	var issue Issue
	issue.SetLabels(` ["Needs More Info"] `)

	assert.Equal(t, `["needs more info"]`, issue.RawLabels)
	assert.Equal(t, []string{"needs more info"}, issue.Labels)
}

func TestIssue_Text(t *testing.T) {
	issue := Issue{Score: 0.875, Comments: 3, HasComments: true}
	assert.Equal(t, "0.875", issue.ScoreText())
	assert.Equal(t, "3", issue.CommentsText())

	issue.HasComments = false
	assert.Empty(t, issue.CommentsText())
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", TruncateRunes("abcdef", 3))
	assert.Equal(t, "ab", TruncateRunes("ab", 3))
	assert.Equal(t, "日本", TruncateRunes("日本語", 2))
	assert.Empty(t, TruncateRunes("abc", 0))
}
