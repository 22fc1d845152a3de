package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/issue-triage/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	localPath     string // Path to the local config file
	globalConfDir string // Path to global config directory (e.g., ~/.config/issue-triage)
}

// NewManager creates a new Manager.
func NewManager(localPath string) *Manager {
	return &Manager{
		localPath:     localPath,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(localPath, globalConfDir string) *Manager {
	return &Manager{
		localPath:     localPath,
		globalConfDir: globalConfDir,
	}
}

// GetLocalConfigInfo returns information about the local config file.
func (m *Manager) GetLocalConfigInfo() domain.ConfigInfo {
	return getConfigInfo(m.localPath)
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitLocalConfig creates the local config file with the default template.
func (m *Manager) InitLocalConfig() (string, error) {
	return m.localPath, initConfig(m.localPath)
}

// InitGlobalConfig creates the global config file with the default template.
func (m *Manager) InitGlobalConfig() (string, error) {
	if m.globalConfDir == "" {
		return "", errors.New("global config directory not available")
	}
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)
	return path, initConfig(path)
}

// initConfig creates a config file with default template.
func initConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}
	return os.WriteFile(path, []byte(domain.ConfigTemplate()), 0o600)
}
