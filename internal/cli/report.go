package cli

import (
	"github.com/runoshun/issue-triage/internal/app"
	"github.com/runoshun/issue-triage/internal/report"
	"github.com/runoshun/issue-triage/internal/usecase"
	"github.com/spf13/cobra"
)

// newReportCommand creates the report command.
func newReportCommand(ref *containerRef) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Query, classify and print high-scoring issues",
		Long: `Query the issue history for up to 50 issues scoring at least 0.75,
ordered by score and discovery time, and classify each one:

  skip  "Needs more info"         needs-more-info label, or "question"/"help" in the title
  skip  "Low score, no activity"  no comments and score below 0.80
  skip  "Likely a question"       "question" in the first 20 characters of the title
  good                            everything else

Good issues are listed in query order, followed by a summary and up to
ten skipped issues with their reason.

Examples:
  # Default report against the issue-finder-postgres container
  triage report

  # Read through the database driver instead of psql
  triage report --backend sql

  # Machine-readable output
  triage report -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, ref)
		},
	}
}

func runReport(cmd *cobra.Command, ref *containerRef) error {
	return ref.run(func(c *app.Container) error {
		return writeReport(cmd, c)
	})
}

func writeReport(cmd *cobra.Command, c *app.Container) error {
	ctx := cmd.Context()
	uc, err := c.TriageIssuesUseCase(ctx)
	if err != nil {
		return err
	}

	out, err := uc.Execute(ctx, usecase.TriageIssuesInput{
		Query:   c.Config.IssueQuery(),
		Timeout: c.Config.QueryTimeout(),
	})
	if err != nil {
		return err
	}

	return report.Render(cmd.OutOrStdout(), c.Config.Report.Format, out.Summary, report.Options{
		SkipLimit: c.Config.Report.SkipLimit,
	})
}
