package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/ports/driven"
)

func TestConfigShowCmd_Defaults(t *testing.T) {
	setupTestServices(t)

	out, errOut, err := executeCommandSplit("config", "show")

	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "File: :memory:")
	assert.Contains(t, out, "Scheme:    raycast")
	assert.Contains(t, out, "Command:   processor-1")
	assert.Contains(t, out, "Directory: (not set)")
}

func TestConfigCmd_DefaultsToShow(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand("config")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Configuration")
}

func TestConfigSetCmd(t *testing.T) {
	env := setupTestServices(t)

	out, err := executeCommand("config", "set", driven.ConfigKeyCommand, "processor-2")

	require.NoError(t, err)
	assert.Contains(t, out, "Set deeplink.command = processor-2")
	assert.Equal(t, "processor-2", env.config.GetString(driven.ConfigKeyCommand))

	out, err = executeCommand("config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Prefix:    raycast://extensions/wheat2021/aurora-input-processor/processor-2")
}

func TestConfigSetCmd_PromptDirIsAbsolute(t *testing.T) {
	env := setupTestServices(t)

	_, err := executeCommand("config", "set", driven.ConfigKeyPromptDir, "prompts")

	require.NoError(t, err)
	dir := env.config.GetString(driven.ConfigKeyPromptDir)
	assert.True(t, filepath.IsAbs(dir))
	assert.Equal(t, "prompts", filepath.Base(dir))
}

func TestConfigSetCmd_Rejects(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown key", "deeplink.host", "x"},
		{"separator in segment", driven.ConfigKeyPublisher, "a/b"},
		{"empty segment", driven.ConfigKeyScheme, "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServices(t)

			_, err := executeCommand("config", "set", tt.key, tt.val)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, env.config.All())
		})
	}
}

func TestConfigPathCmd(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand("config", "path")

	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", out)
}

func TestConfigCmd_StoreNotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := executeCommand("config", "show")

	assert.ErrorIs(t, err, errConfigStoreMissing)
}
