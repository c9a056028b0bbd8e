package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/raylink/internal/adapters/driven/config/file"
	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/services"
)

const commitPrompt = `---
title: Git commit
inputs:
  - id: repo_path
    label: Repository
    type: text
    required: true
  - id: commit_msg
    label: Message
    type: textarea
    required: true
  - id: push
    label: Push
    type: checkbox
    default: false
---
git -C {{repo_path}} commit -m "{{commit_msg}}"
`

// mockOpener records opened URLs instead of launching a handler.
type mockOpener struct {
	opened []string
	err    error
}

func (m *mockOpener) Open(_ context.Context, url string) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, url)
	return nil
}

// newTestServer builds a server over a prompts directory holding one prompt.
func newTestServer(t *testing.T, opener *mockOpener) (*Server, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "git commit.md"), []byte(commitPrompt), 0600))

	svc, err := services.NewDeeplinkService(domain.DefaultTarget(), opener, file.NewPromptStore())
	require.NoError(t, err)

	server, err := NewServer(&Ports{Deeplink: svc, PromptDir: dir})
	require.NoError(t, err)
	return server, dir
}
