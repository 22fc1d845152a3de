// Package cli provides the command-line interface for issue-triage.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/issue-triage/internal/app"
	"github.com/runoshun/issue-triage/internal/domain"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupReport = "report"
	groupSetup  = "setup"
)

// containerRef is filled by the root command before any subcommand runs.
type containerRef struct {
	c *app.Container
}

// run calls fn with the container and closes it afterwards, also when fn fails.
func (r *containerRef) run(fn func(c *app.Container) error) (err error) {
	if r.c == nil {
		return errors.New("application not initialized")
	}
	c := r.c
	defer func() { err = errors.Join(err, c.Close()) }()
	return fn(c)
}

// NewRootCommand creates the root command for triage.
// newContainer is called once per execution, after flags are parsed.
func NewRootCommand(newContainer app.Factory, version string) *cobra.Command {
	var opts app.Options
	ref := &containerRef{}

	root := &cobra.Command{
		Use:   "triage",
		Short: "Report high-scoring issues worth contributing to",
		Long: `triage queries the local issue history database for high-scoring
issues, skips the ones that look like questions or lack activity, and
prints the rest as a ranked report.

Running triage without a subcommand is the same as 'triage report'.`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.Stderr = cmd.ErrOrStderr()
			// init creates the file --config points at
			opts.AllowMissingConfig = cmd.Name() == "init"
			c, err := newContainer(opts)
			if err != nil {
				return err
			}
			ref.c = c

			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, ref)
		},
	}

	root.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Config file (default ./"+domain.LocalConfigFileName+")")
	root.PersistentFlags().StringVar(&opts.Backend, "backend", "", "Issue source: psql or sql")
	root.PersistentFlags().StringVarP(&opts.Format, "format", "o", "", "Report format: "+strings.Join(domain.ReportFormats(), ", "))
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Diagnostics level: debug, info, warn, error")

	root.AddGroup(
		&cobra.Group{ID: groupReport, Title: "Report Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	reportCmd := newReportCommand(ref)
	reportCmd.GroupID = groupReport

	configCmd := newConfigCommand(ref)
	configCmd.GroupID = groupSetup

	root.AddCommand(reportCmd, configCmd)

	return root
}
