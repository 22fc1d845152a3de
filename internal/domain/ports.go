package domain

import (
	"context"
	"io"
)

// IssueSource fetches issue history rows.
type IssueSource interface {
	// Fetch returns issues in the order the query requests
	// (score descending, then discovery time descending).
	Fetch(ctx context.Context, q IssueQuery) ([]*Issue, error)
}

// CommandExecutor executes external commands.
type CommandExecutor interface {
	// ExecuteWithContext runs a command with context and custom stdout/stderr writers.
	ExecuteWithContext(ctx context.Context, cmd *ExecCommand, stdout, stderr io.Writer) error
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo

	// InitLocalConfig writes the default template to the local config path.
	InitLocalConfig() (string, error)

	// InitGlobalConfig writes the default template to the global config path.
	InitGlobalConfig() (string, error)
}

// ConfigInfo holds information about a configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger writes diagnostics grouped by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
