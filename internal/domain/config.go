package domain

import (
	_ "embed"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config file names and locations.
const (
	ConfigFileName      = "config.toml"
	LocalConfigFileName = ".issue-triage.toml"
	globalConfigDirName = "issue-triage"
)

// Source backends.
const (
	BackendPsql = "psql" // docker exec + psql, parses the tabular output
	BackendSQL  = "sql"  // database/sql driver, typed rows
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Default values used when no configuration file sets them.
const (
	DefaultDocker        = "docker"
	DefaultContainer     = "issue-finder-postgres"
	DefaultDBUser        = "postgres"
	DefaultDBName        = "issue_finder"
	DefaultDriver        = "postgres"
	DefaultDSN           = "host=localhost user=postgres password=postgres dbname=issue_finder sslmode=disable port=5432"
	DefaultSkipLimit     = 10
	DefaultLogLevel      = "warn"
	defaultTimeoutSecond = 30
)

// Config represents the application configuration.
type Config struct {
	Source   SourceConfig   `toml:"source"`
	Psql     PsqlConfig     `toml:"psql"`
	Database DatabaseConfig `toml:"database"`
	Query    QueryConfig    `toml:"query"`
	Report   ReportConfig   `toml:"report"`
	Log      LogConfig      `toml:"log"`

	Warnings []string `toml:"-"` // Problems found while loading (unknown keys)
}

// SourceConfig selects where issues come from.
type SourceConfig struct {
	Backend string `toml:"backend"` // "psql" (default) or "sql"
}

// PsqlConfig holds settings for the psql backend from [psql] section.
type PsqlConfig struct {
	Docker    string `toml:"docker"`    // docker binary
	Container string `toml:"container"` // container running PostgreSQL
	User      string `toml:"user"`
	Database  string `toml:"database"`
}

// DatabaseConfig holds settings for the sql backend from [database] section.
type DatabaseConfig struct {
	Driver string `toml:"driver"` // "postgres" or "sqlite"
	DSN    string `toml:"dsn"`
}

// QueryConfig holds settings for the issue query from [query] section.
type QueryConfig struct {
	MinScore       float64 `toml:"min_score"`
	Limit          int     `toml:"limit"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
}

// ReportConfig holds settings for the report from [report] section.
type ReportConfig struct {
	Format    string `toml:"format"`     // text, json or yaml
	SkipLimit int    `toml:"skip_limit"` // Max skipped issues listed in text output
}

// LogConfig holds settings for diagnostics from [log] section.
type LogConfig struct {
	Level string `toml:"level"`          // debug, info, warn or error
	File  string `toml:"file,omitempty"` // Append to this file instead of stderr
}

// NewDefaultConfig returns a config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{Backend: BackendPsql},
		Psql: PsqlConfig{
			Docker:    DefaultDocker,
			Container: DefaultContainer,
			User:      DefaultDBUser,
			Database:  DefaultDBName,
		},
		Database: DatabaseConfig{
			Driver: DefaultDriver,
			DSN:    DefaultDSN,
		},
		Query: QueryConfig{
			MinScore:       DefaultMinScore,
			Limit:          DefaultQueryLimit,
			TimeoutSeconds: defaultTimeoutSecond,
		},
		Report: ReportConfig{
			Format:    FormatText,
			SkipLimit: DefaultSkipLimit,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// IssueQuery returns the query described by the [query] section.
func (c *Config) IssueQuery() IssueQuery {
	return IssueQuery{MinScore: c.Query.MinScore, Limit: c.Query.Limit}
}

// QueryTimeout returns the per-run query timeout.
func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.Query.TimeoutSeconds) * time.Second
}

// PsqlTarget returns the docker/psql target from the [psql] section.
func (c *Config) PsqlTarget() PsqlTarget {
	return PsqlTarget{
		Docker:    c.Psql.Docker,
		Container: c.Psql.Container,
		User:      c.Psql.User,
		Database:  c.Psql.Database,
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	switch c.Source.Backend {
	case BackendPsql:
		if c.Psql.Container == "" || c.Psql.User == "" || c.Psql.Database == "" {
			return fmt.Errorf("%w: psql.container, psql.user and psql.database are required", ErrInvalidConfig)
		}
	case BackendSQL:
		if c.Database.Driver == "" || c.Database.DSN == "" {
			return fmt.Errorf("%w: database.driver and database.dsn are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Source.Backend)
	}

	if !slices.Contains(ReportFormats(), c.Report.Format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Report.Format)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log.level %q must be one of debug, info, warn, error", ErrInvalidConfig, c.Log.Level)
	}
	if c.Query.Limit <= 0 {
		return fmt.Errorf("%w: query.limit must be positive", ErrInvalidConfig)
	}
	if c.Query.MinScore < 0 || c.Query.MinScore > 1 {
		return fmt.Errorf("%w: query.min_score must be within [0,1]", ErrInvalidConfig)
	}
	if c.Query.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: query.timeout_seconds must be positive", ErrInvalidConfig)
	}
	if c.Report.SkipLimit < 0 || c.Report.SkipLimit > DefaultSkipLimit {
		return fmt.Errorf("%w: report.skip_limit must be within [0,%d]", ErrInvalidConfig, DefaultSkipLimit)
	}
	return nil
}

// ReportFormats returns all valid report formats.
func ReportFormats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// ConfigTemplate returns the commented default configuration file.
func ConfigTemplate() string {
	return configTemplateContent
}

// GlobalConfigDir returns the global configuration directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, globalConfigDirName)
}

// RedactedDSNPassword replaces passwords in redacted connection strings.
const RedactedDSNPassword = "xxxxx"

var dsnPasswordPattern = regexp.MustCompile(`(?i)(\bpassword\s*=\s*)('(?:[^'\\]|\\.)*'|\S*)`)

// RedactDSN hides the password of a postgres URL or key=value connection string.
// Other strings, such as sqlite paths, are returned unchanged.
func RedactDSN(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.User != nil {
		return u.Redacted()
	}
	return dsnPasswordPattern.ReplaceAllString(dsn, "${1}"+RedactedDSNPassword)
}

// Redacted returns a copy of c safe to print.
func (c *Config) Redacted() *Config {
	out := *c
	out.Database.DSN = RedactDSN(c.Database.DSN)
	out.Warnings = slices.Clone(c.Warnings)
	return &out
}
