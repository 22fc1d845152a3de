package usecase

import (
	"context"

	"github.com/runoshun/issue-triage/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	EffectiveConfig *domain.Config    // Configuration in use, command-line overrides included; DSN password redacted
	GlobalConfig    domain.ConfigInfo // Global config file info
	LocalConfig     domain.ConfigInfo // Local config file info
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	effective     *domain.Config
}

// NewShowConfig creates a new ShowConfig use case reporting effective as the config in use.
func NewShowConfig(configManager domain.ConfigManager, effective *domain.Config) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		effective:     effective,
	}
}

// Execute retrieves configuration file information and the effective config.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	return &ShowConfigOutput{
		EffectiveConfig: uc.effective.Redacted(),
		GlobalConfig:    uc.configManager.GetGlobalConfigInfo(),
		LocalConfig:     uc.configManager.GetLocalConfigInfo(),
	}, nil
}
