// Package mcp provides an MCP (Model Context Protocol) server adapter for raylink.
// It lets AI assistants build, open and inspect launcher deeplinks.
package mcp

import "errors"

// ErrMissingDeeplinkService is returned when the deeplink service is not provided.
var ErrMissingDeeplinkService = errors.New("mcp: deeplink service is required")
