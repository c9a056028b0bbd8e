package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/services"
)

func TestURLCmd_Use(t *testing.T) {
	assert.Equal(t, "url [prompt-path]", urlCmd.Use)
}

func TestURLCmd_PrintsWithoutOpening(t *testing.T) {
	env := setupTestServices(t)

	out, errOut, err := executeCommandSplit("url", "/opt/Notes/Prompts/exec/git modify last.md")

	require.NoError(t, err)
	assert.Equal(t, gitModifyLastURL+"\n", out)
	assert.Empty(t, errOut)
	assert.Empty(t, env.opener.opened)
}

func TestURLCmd_ErrorsGoToStderr(t *testing.T) {
	setupTestServices(t)

	out, errOut, err := executeCommandSplit("url", "/opt/a.md", "--inputs-json", "{bad")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error:")
}

func TestURLCmd_PairsAreStrings(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand("url", "/opt/a.md", "-i", "push=true", "-i", "push=false")

	require.NoError(t, err)
	link, err := services.DecodeDeeplink(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, domain.InputValues{"push": "false"}, link.Arguments.Inputs, "later pairs win")
}

func TestURLCmd_PairsOverrideJSON(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand("url", "/opt/a.md",
		"--inputs-json", `{"a": "json", "b": ["x", "y"]}`,
		"-i", "a=pair")

	require.NoError(t, err)
	link, err := services.DecodeDeeplink(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, domain.InputValues{"a": "pair", "b": []any{"x", "y"}}, link.Arguments.Inputs)
}

func TestURLCmd_Idempotent(t *testing.T) {
	setupTestServices(t)

	first, err := executeCommand("url", "/opt/code/repo", "-i", "commit_msg=完整的提交信息")
	require.NoError(t, err)
	second, err := executeCommand("url", "/opt/code/repo", "-i", "commit_msg=完整的提交信息")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
