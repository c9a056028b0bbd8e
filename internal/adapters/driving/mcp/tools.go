package mcp

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/ports/driving"
)

// DeeplinkInput is the input schema for build_deeplink and open_deeplink.
type DeeplinkInput struct {
	PromptPath string         `json:"prompt_path" jsonschema:"absolute path of the prompt file"`
	Inputs     map[string]any `json:"inputs,omitempty" jsonschema:"form values keyed by input id; strings, string lists for multiselect, booleans for checkbox"`
	Command    string         `json:"command,omitempty" jsonschema:"extension command, e.g. processor-2 (default from config)"`
}

// DeeplinkOutput is the output schema for build_deeplink and open_deeplink.
type DeeplinkOutput struct {
	URL     string `json:"url"`
	Command string `json:"command"`
	Opened  bool   `json:"opened"`
}

// DecodeInput is the input schema for decode_deeplink.
type DecodeInput struct {
	URL string `json:"url" jsonschema:"the deeplink URL to decode"`
}

// DecodeOutput is the output schema for decode_deeplink.
type DecodeOutput struct {
	Scheme     string         `json:"scheme"`
	Publisher  string         `json:"publisher"`
	Extension  string         `json:"extension"`
	Command    string         `json:"command"`
	PromptPath string         `json:"prompt_path"`
	Inputs     map[string]any `json:"inputs,omitempty"`
}

// CheckInput is the input schema for check_inputs.
type CheckInput struct {
	PromptPath string         `json:"prompt_path" jsonschema:"absolute path of the prompt file"`
	Inputs     map[string]any `json:"inputs,omitempty" jsonschema:"form values keyed by input id"`
}

// CheckOutput is the output schema for check_inputs.
type CheckOutput struct {
	Values   map[string]any    `json:"values"`
	Warnings map[string]string `json:"warnings,omitempty"`
	Complete bool              `json:"complete"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_deeplink",
		Description: "Build a launcher deeplink for a prompt file without opening it",
	}, s.handleBuildDeeplink)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "open_deeplink",
		Description: "Build a launcher deeplink for a prompt file and open it. " +
			"The extension runs the prompt directly when every required input is supplied",
	}, s.handleOpenDeeplink)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "decode_deeplink",
		Description: "Decode a launcher deeplink into its target, prompt path and inputs",
	}, s.handleDecodeDeeplink)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_inputs",
		Description: "Merge inputs with a prompt file's declared inputs and report defaults, warnings and completeness",
	}, s.handleCheckInputs)
}

// service returns the deeplink service for command.
func (s *Server) service(command string) (driving.DeeplinkService, error) {
	if command == "" {
		return s.ports.Deeplink, nil
	}
	return s.ports.Deeplink.ForCommand(command)
}

// absolutePromptPath rejects relative paths; the server's working
// directory means nothing to the caller.
func absolutePromptPath(path string) (string, error) {
	if path == "" || !filepath.IsAbs(path) {
		return "", fmt.Errorf("prompt_path must be absolute, got %q: %w", path, domain.ErrInvalidInput)
	}
	return filepath.Clean(path), nil
}

func (s *Server) handleBuildDeeplink(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DeeplinkInput,
) (*mcp.CallToolResult, DeeplinkOutput, error) {
	promptPath, err := absolutePromptPath(input.PromptPath)
	if err != nil {
		return nil, DeeplinkOutput{}, err
	}
	svc, err := s.service(input.Command)
	if err != nil {
		return nil, DeeplinkOutput{}, err
	}

	link, err := svc.Build(promptPath, input.Inputs)
	if err != nil {
		return nil, DeeplinkOutput{}, err
	}
	return nil, DeeplinkOutput{URL: link, Command: svc.Target().Command}, nil
}

func (s *Server) handleOpenDeeplink(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeeplinkInput,
) (*mcp.CallToolResult, DeeplinkOutput, error) {
	promptPath, err := absolutePromptPath(input.PromptPath)
	if err != nil {
		return nil, DeeplinkOutput{}, err
	}
	svc, err := s.service(input.Command)
	if err != nil {
		return nil, DeeplinkOutput{}, err
	}

	link, err := svc.Open(ctx, promptPath, input.Inputs)
	if err != nil {
		return nil, DeeplinkOutput{}, err
	}
	return nil, DeeplinkOutput{URL: link, Command: svc.Target().Command, Opened: true}, nil
}

func (s *Server) handleDecodeDeeplink(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DecodeInput,
) (*mcp.CallToolResult, DecodeOutput, error) {
	link, err := s.ports.Deeplink.Decode(input.URL)
	if err != nil {
		return nil, DecodeOutput{}, err
	}
	return nil, DecodeOutput{
		Scheme:     link.Target.Scheme,
		Publisher:  link.Target.Publisher,
		Extension:  link.Target.Extension,
		Command:    link.Target.Command,
		PromptPath: link.Arguments.PromptPath,
		Inputs:     link.Arguments.Inputs,
	}, nil
}

func (s *Server) handleCheckInputs(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CheckInput,
) (*mcp.CallToolResult, CheckOutput, error) {
	promptPath, err := absolutePromptPath(input.PromptPath)
	if err != nil {
		return nil, CheckOutput{}, err
	}

	result, err := s.ports.Deeplink.Check(promptPath, input.Inputs)
	if err != nil {
		return nil, CheckOutput{}, err
	}
	return nil, CheckOutput{
		Values:   result.Values,
		Warnings: result.Warnings,
		Complete: result.Complete,
	}, nil
}
