package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Query defaults.
const (
	DefaultMinScore     = 0.75
	DefaultQueryLimit   = 50
	DefaultQueryTimeout = 30 * time.Second
)

// IssueColumns lists the selected columns in result order.
var IssueColumns = []string{
	"issue_id",
	"issue_title",
	"score",
	"comments",
	"project_name",
	"category",
	"labels",
}

// IssueQuery selects high-scoring issues from the issue history.
type IssueQuery struct {
	MinScore float64
	Limit    int
}

// DefaultIssueQuery returns the query used when nothing is configured.
func DefaultIssueQuery() IssueQuery {
	return IssueQuery{MinScore: DefaultMinScore, Limit: DefaultQueryLimit}
}

// SQL renders the statement with literal values, suitable for a CLI client.
func (q IssueQuery) SQL() string {
	return fmt.Sprintf(`SELECT issue_id, issue_title, score, comments, project_name, category, labels
FROM issue_history
WHERE score >= %s
ORDER BY score DESC, discovered_at DESC
LIMIT %d;`, formatScore(q.MinScore), q.Limit)
}

// BoundSQL renders the statement with '?' placeholders for MinScore and Limit.
// Drivers with other bindvar styles rebind it before use.
func (q IssueQuery) BoundSQL() string {
	return `SELECT issue_id, issue_title, score, comments, project_name, category, labels
FROM issue_history
WHERE score >= ?
ORDER BY score DESC, discovered_at DESC
LIMIT ?`
}

// formatScore keeps two decimals for thresholds like 0.75 but never drops precision.
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if len(s) < 4 {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return s
}
