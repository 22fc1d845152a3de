package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TitleWidth is the number of title runes kept from each row.
const TitleWidth = 50

// Issue is one row of previously discovered issue history.
// Instances live for a single run; nothing here is persisted.
// Fields are ordered to minimize memory padding.
type Issue struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Project     string   `json:"project,omitempty" yaml:"project,omitempty"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	RawLabels   string   `json:"-" yaml:"-"` // Lower-cased label blob as stored upstream
	Labels      []string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Score       float64  `json:"score" yaml:"score"`
	Comments    int      `json:"comments" yaml:"comments"`
	HasComments bool     `json:"-" yaml:"-"` // False when the source had no comment count
}

// ScoreText returns the score in its shortest decimal form (0.9, 0.875).
func (i *Issue) ScoreText() string {
	return strconv.FormatFloat(i.Score, 'f', -1, 64)
}

// CommentsText returns the comment count, or an empty string when unknown.
func (i *Issue) CommentsText() string {
	if !i.HasComments {
		return ""
	}
	return strconv.Itoa(i.Comments)
}

// SetLabels stores the raw label blob (lower-cased) and the decoded tags.
func (i *Issue) SetLabels(raw string) {
	i.RawLabels = strings.ToLower(strings.TrimSpace(raw))
	i.Labels = ParseLabels(i.RawLabels)
}

// ParseLabels decodes a label blob into lower-cased tags.
// The issue history stores labels as a JSON array; anything that does not
// decode as one is treated as a comma separated list.
func ParseLabels(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}

	var decoded []string
	if strings.HasPrefix(raw, "[") && json.Unmarshal([]byte(raw), &decoded) == nil {
		return normalizeLabels(decoded)
	}
	return normalizeLabels(strings.Split(raw, ","))
}

func normalizeLabels(in []string) []string {
	var out []string
	for _, l := range in {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// TruncateRunes returns the first n runes of s.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for idx := range s {
		if count == n {
			return s[:idx]
		}
		count++
	}
	return s
}
