// Package sqlstore reads issue history through a database/sql driver.
// Rows are scanned into typed fields directly; nothing is parsed from text.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"github.com/runoshun/issue-triage/internal/domain"
	_ "modernc.org/sqlite" // sqlite driver
)

// Ensure Store implements domain.IssueSource.
var _ domain.IssueSource = (*Store)(nil)

// issueRow mirrors the selected issue_history columns.
type issueRow struct {
	ID       string         `db:"issue_id"`
	Title    string         `db:"issue_title"`
	Project  sql.NullString `db:"project_name"`
	Category sql.NullString `db:"category"`
	Labels   sql.NullString `db:"labels"`
	Comments sql.NullInt64  `db:"comments"`
	Score    float64        `db:"score"`
}

// Store is an issue source backed by a SQL database.
type Store struct {
	db     *sqlx.DB
	logger domain.Logger
}

// Open connects to the database with the given driver ("postgres" or "sqlite").
func Open(ctx context.Context, driver, dsn string, logger domain.Logger) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: connect %s: %w", domain.ErrQueryFailed, driver, err)
	}
	return New(db, logger), nil
}

// New wraps an existing connection.
func New(db *sqlx.DB, logger domain.Logger) *Store {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Store{db: db, logger: logger}
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Fetch runs the issue query with bound parameters.
func (s *Store) Fetch(ctx context.Context, q domain.IssueQuery) ([]*domain.Issue, error) {
	query := s.db.Rebind(q.BoundSQL())
	s.logger.Debug("sql", fmt.Sprintf("min_score=%v limit=%d driver=%s", q.MinScore, q.Limit, s.db.DriverName()))

	var rows []issueRow
	if err := s.db.SelectContext(ctx, &rows, query, q.MinScore, q.Limit); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrQueryFailed, err)
	}

	issues := make([]*domain.Issue, 0, len(rows))
	for _, r := range rows {
		issues = append(issues, r.toIssue())
	}
	s.logger.Info("sql", fmt.Sprintf("fetched %d issues", len(issues)))
	return issues, nil
}

func (r issueRow) toIssue() *domain.Issue {
	issue := &domain.Issue{
		ID:          r.ID,
		Title:       strings.TrimSpace(domain.TruncateRunes(r.Title, domain.TitleWidth)),
		Project:     r.Project.String,
		Category:    r.Category.String,
		Score:       r.Score,
		Comments:    int(r.Comments.Int64),
		HasComments: r.Comments.Valid,
	}
	issue.SetLabels(r.Labels.String)
	return issue
}
