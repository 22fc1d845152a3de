// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/runoshun/issue-triage/internal/domain"
)

// MockIssueSource is a test double for domain.IssueSource.
type MockIssueSource struct {
	FetchErr  error
	Issues    []*domain.Issue
	LastQuery domain.IssueQuery
	Calls     int
}

// Fetch returns the configured issues.
func (m *MockIssueSource) Fetch(ctx context.Context, q domain.IssueQuery) ([]*domain.Issue, error) {
	m.Calls++
	m.LastQuery = q
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.Issues, nil
}

// MockExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockExecutor struct {
	ExecuteErr   error
	LastCommand  *domain.ExecCommand
	Stdout       string
	Stderr       string
	ExecuteCalls int
}

// NewMockExecutor creates a MockExecutor whose runs print stdout.
func NewMockExecutor(stdout string) *MockExecutor {
	return &MockExecutor{Stdout: stdout}
}

// ExecuteWithContext writes the configured streams and returns ExecuteErr.
func (m *MockExecutor) ExecuteWithContext(_ context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	m.ExecuteCalls++
	m.LastCommand = cmd
	if stdout != nil {
		_, _ = io.WriteString(stdout, m.Stdout)
	}
	if stderr != nil {
		_, _ = io.WriteString(stderr, m.Stderr)
	}
	return m.ExecuteErr
}

// LogEntry is one message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// String renders the entry like "WARN psql: msg".
func (e LogEntry) String() string {
	return fmt.Sprintf("%s %s: %s", e.Level, e.Category, e.Msg)
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// HasLevel reports whether any entry was logged at level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr          error
	GlobalConfigInfo domain.ConfigInfo
	LocalConfigInfo  domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// GetLocalConfigInfo returns the configured local config info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// InitLocalConfig records the call and fails if the local config exists.
func (m *MockConfigManager) InitLocalConfig() (string, error) {
	m.InitLocalCalled = true
	if m.InitErr != nil {
		return "", m.InitErr
	}
	if m.LocalConfigInfo.Exists {
		return "", domain.ErrConfigExists
	}
	return m.LocalConfigInfo.Path, nil
}

// InitGlobalConfig records the call and fails if the global config exists.
func (m *MockConfigManager) InitGlobalConfig() (string, error) {
	m.InitGlobalCalled = true
	if m.InitErr != nil {
		return "", m.InitErr
	}
	if m.GlobalConfigInfo.Exists {
		return "", domain.ErrConfigExists
	}
	return m.GlobalConfigInfo.Path, nil
}
