// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/issue-triage/internal/domain"
)

// Environment variables that override file settings.
const (
	EnvDSN      = "DB_CONNECTION_STRING"
	EnvLogLevel = "LOG_LEVEL"
)

// Loader loads configuration from TOML files.
type Loader struct {
	localPath     string // Path to the local config file (./.issue-triage.toml or --config)
	globalConfDir string // Path to global config directory (e.g., ~/.config/issue-triage)
	getenv        func(string) string
}

// NewLoader creates a new Loader.
func NewLoader(localPath string) *Loader {
	return &Loader{
		localPath:     localPath,
		globalConfDir: defaultGlobalConfigDir(),
		getenv:        os.Getenv,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(localPath, globalConfDir string) *Loader {
	return &Loader{
		localPath:     localPath,
		globalConfDir: globalConfDir,
		getenv:        func(string) string { return "" },
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration: defaults <- global <- local <- environment.
// Missing files are skipped; the result is validated.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		if err := l.mergeFile(cfg, filepath.Join(l.globalConfDir, domain.ConfigFileName)); err != nil {
			return nil, err
		}
	}
	if l.localPath != "" {
		if err := l.mergeFile(cfg, l.localPath); err != nil {
			return nil, err
		}
	}

	if dsn := l.getenv(EnvDSN); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if level := l.getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile decodes path over cfg. Keys absent from the file keep their value.
// Unknown keys are reported as warnings rather than errors.
func (l *Loader) mergeFile(cfg *domain.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(cfg)

	var strictErr *toml.StrictMissingError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &strictErr):
		for _, e := range strictErr.Errors {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in %s: %s", filepath.Base(path), strings.Join(e.Key(), ".")))
		}
		return nil
	default:
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidConfig, path, err)
	}
}
