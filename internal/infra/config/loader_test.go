package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/issue-triage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_Defaults(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoaderWithGlobalDir(filepath.Join(dir, domain.LocalConfigFileName), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, domain.LocalConfigFileName)
	writeFile(t, local, `
[source]
backend = "sql"

[database]
driver = "sqlite"
dsn = "/tmp/issues.db"

[query]
limit = 20
`)

	cfg, err := NewLoaderWithGlobalDir(local, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.BackendSQL, cfg.Source.Backend)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/issues.db", cfg.Database.DSN)
	assert.Equal(t, 20, cfg.Query.Limit)
	// Untouched keys keep defaults
	assert.Equal(t, domain.DefaultMinScore, cfg.Query.MinScore)
	assert.Equal(t, domain.DefaultContainer, cfg.Psql.Container)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[psql]
container = "global-db"
user = "global-user"

[log]
level = "debug"
`)
	local := filepath.Join(t.TempDir(), domain.LocalConfigFileName)
	writeFile(t, local, `
[psql]
container = "local-db"
`)

	cfg, err := NewLoaderWithGlobalDir(local, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "local-db", cfg.Psql.Container)
	assert.Equal(t, "global-user", cfg.Psql.User)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	local := filepath.Join(t.TempDir(), domain.LocalConfigFileName)
	writeFile(t, local, `
[report]
format = "json"
colour = true
`)

	cfg, err := NewLoaderWithGlobalDir(local, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.FormatJSON, cfg.Report.Format)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "report.colour")
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	local := filepath.Join(t.TempDir(), domain.LocalConfigFileName)
	writeFile(t, local, "[query\nlimit = ")

	_, err := NewLoaderWithGlobalDir(local, t.TempDir()).Load()

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestLoader_Load_InvalidValues(t *testing.T) {
	local := filepath.Join(t.TempDir(), domain.LocalConfigFileName)
	writeFile(t, local, `
[source]
backend = "http"
`)

	_, err := NewLoaderWithGlobalDir(local, t.TempDir()).Load()

	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestLoader_Load_SkipLimitAboveTen(t *testing.T) {
	local := filepath.Join(t.TempDir(), domain.LocalConfigFileName)
	writeFile(t, local, `
[report]
skip_limit = 20
`)

	_, err := NewLoaderWithGlobalDir(local, t.TempDir()).Load()

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestLoader_Load_NormalizesLogLevel(t *testing.T) {
	local := filepath.Join(t.TempDir(), domain.LocalConfigFileName)
	writeFile(t, local, `
[log]
level = "ERROR"
`)

	cfg, err := NewLoaderWithGlobalDir(local, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_Load_EnvironmentOverrides(t *testing.T) {
	loader := NewLoaderWithGlobalDir("", t.TempDir())
	env := map[string]string{
		EnvDSN:      "postgres://triage@db/issue_finder",
		EnvLogLevel: "DEBUG",
	}
	loader.getenv = func(k string) string { return env[k] }

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://triage@db/issue_finder", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
}
