package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/issue-triage/internal/app"
	"github.com/runoshun/issue-triage/internal/domain"
	"github.com/runoshun/issue-triage/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(ref *containerRef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage issue-triage configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand(ref))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(ref))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(ref *containerRef) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ref.run(func(c *app.Container) error {
				out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()

				// Display loaded files section
				_, _ = fmt.Fprintln(w, "[Loaded from]")
				printConfigInfo(w, out.GlobalConfig)
				printConfigInfo(w, out.LocalConfig)
				_, _ = fmt.Fprintln(w)

				// Display effective config in TOML format
				_, _ = fmt.Fprintln(w, "[Effective Config]")
				return formatEffectiveConfig(w, out.EffectiveConfig)
			})
		},
	}
}

func printConfigInfo(w io.Writer, info domain.ConfigInfo) {
	if info.Path == "" {
		return
	}
	if info.Exists {
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
	} else {
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
	}
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(false)
	return enc.Encode(cfg)
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the default configuration file",
		Args:  cobra.NoArgs,
		// The template needs no configuration; skip loading it.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), domain.ConfigTemplate())
			return err
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(ref *containerRef) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration file.

By default the file is created as ./` + domain.LocalConfigFileName + ` (or the --config path).
Use --global to create it under the user configuration directory instead.
Existing files are never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ref.run(func(c *app.Container) error {
				out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{Global: global})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Path)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Create the global configuration file")

	return cmd
}
