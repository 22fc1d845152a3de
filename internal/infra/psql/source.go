// Package psql reads issue history by running psql inside the database container.
package psql

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/issue-triage/internal/domain"
)

// Ensure Source implements domain.IssueSource.
var _ domain.IssueSource = (*Source)(nil)

// Source runs the issue query through docker exec and parses the table psql prints.
type Source struct {
	executor domain.CommandExecutor
	logger   domain.Logger
	target   domain.PsqlTarget
}

// NewSource creates a new Source.
func NewSource(executor domain.CommandExecutor, target domain.PsqlTarget, logger domain.Logger) *Source {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Source{
		executor: executor,
		target:   target,
		logger:   logger,
	}
}

// Fetch runs the query and returns the parsed rows.
// Any failure of the client process is returned as domain.ErrQueryFailed
// instead of reporting on whatever partial output it produced.
func (s *Source) Fetch(ctx context.Context, q domain.IssueQuery) ([]*domain.Issue, error) {
	cmd := domain.NewPsqlCommand(s.target, q.SQL())
	s.logger.Debug("psql", fmt.Sprintf("running %s %s", cmd.Program, strings.Join(cmd.Args[:len(cmd.Args)-1], " ")))

	var stdout, stderr bytes.Buffer
	if err := s.executor.ExecuteWithContext(ctx, cmd, &stdout, &stderr); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrQueryFailed, ctxErr)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrQueryFailed, msg, err)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrQueryFailed, err)
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		s.logger.Warn("psql", msg)
	}

	issues, err := ParseTable(stdout.String())
	if err != nil {
		return nil, fmt.Errorf("parse psql output: %w", err)
	}
	s.logger.Info("psql", fmt.Sprintf("parsed %d issues", len(issues)))
	return issues, nil
}
