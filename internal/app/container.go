// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/issue-triage/internal/domain"
	"github.com/runoshun/issue-triage/internal/infra/config"
	"github.com/runoshun/issue-triage/internal/infra/executor"
	"github.com/runoshun/issue-triage/internal/infra/logging"
	"github.com/runoshun/issue-triage/internal/infra/psql"
	"github.com/runoshun/issue-triage/internal/infra/sqlstore"
	"github.com/runoshun/issue-triage/internal/usecase"
)

// Options are the command-line overrides applied on top of loaded configuration.
// Empty fields leave the configured value untouched.
type Options struct {
	Stderr     io.Writer // Destination for diagnostics when no log file is set
	WorkDir    string    // Directory searched for the local config file
	ConfigPath string    // Explicit config file (--config)
	Backend    string
	Format     string
	LogLevel   string

	AllowMissingConfig bool // Do not fail when ConfigPath does not exist yet
}

// Factory creates a Container from options.
type Factory func(opts Options) (*Container, error)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigManager domain.ConfigManager
	Executor      domain.CommandExecutor
	Logger        domain.Logger

	// Source overrides backend selection when set (tests).
	Source domain.IssueSource

	// Configuration
	Config *domain.Config

	closers []io.Closer
}

// New loads configuration and builds a Container.
func New(opts Options) (*Container, error) {
	localPath := opts.ConfigPath
	if localPath != "" {
		if _, err := os.Stat(localPath); err != nil && !(opts.AllowMissingConfig && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("config file: %w", err)
		}
	} else {
		dir := opts.WorkDir
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			dir = cwd
		}
		localPath = filepath.Join(dir, domain.LocalConfigFileName)
	}

	configLoader := config.NewLoader(localPath)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}
	if err := applyOverrides(cfg, opts); err != nil {
		return nil, err
	}

	c := &Container{
		ConfigManager: config.NewManager(localPath),
		Executor:      executor.NewClient(),
		Config:        cfg,
	}

	level := logging.ParseLevel(cfg.Log.Level)
	if cfg.Log.File != "" {
		fileLogger, err := logging.NewFile(cfg.Log.File, level)
		if err != nil {
			return nil, err
		}
		c.Logger = fileLogger
		c.OnClose(fileLogger)
	} else {
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		c.Logger = logging.New(stderr, level)
	}

	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, source domain.IssueSource, manager domain.ConfigManager, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		ConfigManager: manager,
		Logger:        logger,
		Source:        source,
		Config:        cfg,
	}
}

// applyOverrides copies non-empty command-line values into cfg and revalidates.
func applyOverrides(cfg *domain.Config, opts Options) error {
	if opts.Backend != "" {
		cfg.Source.Backend = opts.Backend
	}
	if opts.Format != "" {
		cfg.Report.Format = opts.Format
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(opts.LogLevel)
	}
	return cfg.Validate()
}

// IssueSource returns the source selected by [source] backend.
// A sql source holds a connection that Close releases.
func (c *Container) IssueSource(ctx context.Context) (domain.IssueSource, error) {
	if c.Source != nil {
		return c.Source, nil
	}

	switch c.Config.Source.Backend {
	case domain.BackendPsql:
		return psql.NewSource(c.Executor, c.Config.PsqlTarget(), c.Logger), nil
	case domain.BackendSQL:
		ctx, cancel := context.WithTimeout(ctx, c.Config.QueryTimeout())
		defer cancel()
		store, err := sqlstore.Open(ctx, c.Config.Database.Driver, c.Config.Database.DSN, c.Logger)
		if err != nil {
			return nil, err
		}
		c.OnClose(store)
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, c.Config.Source.Backend)
	}
}

// OnClose registers a resource that Close releases.
func (c *Container) OnClose(closer io.Closer) {
	c.closers = append(c.closers, closer)
}

// Close releases connections and log files opened by the Container.
// It is safe to call more than once.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// TriageIssuesUseCase returns a new TriageIssues use case bound to the configured source.
func (c *Container) TriageIssuesUseCase(ctx context.Context) (*usecase.TriageIssues, error) {
	source, err := c.IssueSource(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.NewTriageIssues(source, c.Logger), nil
}

// ShowConfigUseCase returns a new ShowConfig use case reporting Config, command-line overrides included.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.Config)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
