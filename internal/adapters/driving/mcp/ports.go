package mcp

import (
	"github.com/custodia-labs/raylink/internal/core/ports/driving"
)

// Ports aggregates what the MCP server needs.
type Ports struct {
	// Deeplink builds, opens and decodes deeplinks.
	Deeplink driving.DeeplinkService

	// PromptDir is the directory served as prompt resources.
	// Optional; prompt resources are empty when unset.
	PromptDir string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Deeplink == nil {
		return ErrMissingDeeplinkService
	}
	return nil
}
