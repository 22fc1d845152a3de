package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/issue-triage/internal/domain"
	"github.com/runoshun/issue-triage/internal/testutil"
	"github.com/runoshun/issue-triage/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates local config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.LocalConfigInfo = domain.ConfigInfo{
			Path:   "/work/.issue-triage.toml",
			Exists: false,
		}

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{Global: false})

		require.NoError(t, err)
		assert.Equal(t, "/work/.issue-triage.toml", out.Path)
		assert.True(t, manager.InitLocalCalled)
		assert.False(t, manager.InitGlobalCalled)
	})

	t.Run("creates global config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.GlobalConfigInfo = domain.ConfigInfo{
			Path:   "/home/test/.config/issue-triage/config.toml",
			Exists: false,
		}

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{Global: true})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/issue-triage/config.toml", out.Path)
		assert.False(t, manager.InitLocalCalled)
		assert.True(t, manager.InitGlobalCalled)
	})

	t.Run("returns error when local config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.LocalConfigInfo = domain.ConfigInfo{
			Path:   "/work/.issue-triage.toml",
			Exists: true,
		}

		uc := usecase.NewInitConfig(manager)
		out, err := uc.Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
		assert.Nil(t, out)
	})
}
