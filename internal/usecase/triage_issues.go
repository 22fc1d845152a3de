// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/issue-triage/internal/domain"
	"github.com/runoshun/issue-triage/internal/report"
)

// TriageIssuesInput contains the parameters for triaging issues.
type TriageIssuesInput struct {
	Query   domain.IssueQuery
	Timeout time.Duration // 0 means no timeout
}

// TriageIssuesOutput contains the result of triaging issues.
type TriageIssuesOutput struct {
	Summary         *report.Summary
	Classifications []domain.Classification
}

// TriageIssues fetches high-scoring issues and classifies them.
type TriageIssues struct {
	source domain.IssueSource
	logger domain.Logger
}

// NewTriageIssues creates a new TriageIssues use case.
func NewTriageIssues(source domain.IssueSource, logger domain.Logger) *TriageIssues {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &TriageIssues{
		source: source,
		logger: logger,
	}
}

// Execute runs the query once and classifies every returned row.
func (uc *TriageIssues) Execute(ctx context.Context, in TriageIssuesInput) (*TriageIssuesOutput, error) {
	if in.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, in.Timeout)
		defer cancel()
	}

	issues, err := uc.source.Fetch(ctx, in.Query)
	if err != nil {
		return nil, fmt.Errorf("fetch issues: %w", err)
	}

	results := domain.ClassifyAll(issues)
	for _, r := range results {
		if !r.IsGood() {
			uc.logger.Debug("triage", fmt.Sprintf("skip %s: %s", r.Issue.ID, r.Reason))
		}
	}

	summary := report.NewSummary(results)
	uc.logger.Info("triage", fmt.Sprintf("%d issues: %d good, %d skipped", summary.Total, summary.GoodCount, summary.SkipCount))

	return &TriageIssuesOutput{
		Summary:         summary,
		Classifications: results,
	}, nil
}
