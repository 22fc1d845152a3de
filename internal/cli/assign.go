package cli

import (
	"fmt"

	"github.com/runoshun/issue-triage/internal/domain"
	"github.com/spf13/cobra"
)

// NewAssignCommand creates the retired assign-issues command.
// It accepts nothing, touches no network, files or credentials, prints the
// notice and fails. --help is not special-cased: every invocation fails.
func NewAssignCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "assign-issues",
		Short:              "Disabled: issue auto-assignment has been removed",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), domain.AssignmentDisabledMessage)
			return domain.ErrAssignmentDisabled
		},
	}
}
