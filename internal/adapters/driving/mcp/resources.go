package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/raylink/internal/adapters/driven/config/file"
)

// uriScheme is the URI scheme for raylink resources.
const uriScheme = "raylink://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "target",
		Name:        "target",
		Description: "The extension command deeplinks are built for",
		MIMEType:    "application/json",
	}, s.handleTargetResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "prompts",
		Name:        "prompts",
		Description: "Prompt files in the configured prompts directory, with their deeplinks",
		MIMEType:    "application/json",
	}, s.handlePromptsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "prompts/{name}",
		Name:        "prompt-file",
		Description: "Content of a prompt file in the prompts directory",
		MIMEType:    "text/markdown",
	}, s.handlePromptFileResource)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleTargetResource returns the configured target.
func (s *Server) handleTargetResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	target := s.ports.Deeplink.Target()
	return jsonResource(req.Params.URI, struct {
		Scheme    string `json:"scheme"`
		Publisher string `json:"publisher"`
		Extension string `json:"extension"`
		Command   string `json:"command"`
		Prefix    string `json:"prefix"`
	}{target.Scheme, target.Publisher, target.Extension, target.Command, target.Prefix()})
}

// handlePromptsResource lists the prompt files in the prompts directory.
func (s *Server) handlePromptsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type promptInfo struct {
		Name       string `json:"name"`
		Title      string `json:"title"`
		PromptPath string `json:"prompt_path"`
		Inputs     int    `json:"inputs"`
		URL        string `json:"url"`
	}

	infos := []promptInfo{}
	if s.ports.PromptDir != "" {
		prompts, err := s.ports.Deeplink.Prompts(s.ports.PromptDir)
		if err != nil {
			return nil, fmt.Errorf("listing prompts: %w", err)
		}
		for i := range prompts {
			link, err := s.ports.Deeplink.Build(prompts[i].FilePath, nil)
			if err != nil {
				return nil, fmt.Errorf("building deeplink for %s: %w", prompts[i].FilePath, err)
			}
			infos = append(infos, promptInfo{
				Name:       filepath.Base(prompts[i].FilePath),
				Title:      prompts[i].Title,
				PromptPath: prompts[i].FilePath,
				Inputs:     len(prompts[i].Inputs),
				URL:        link,
			})
		}
	}
	return jsonResource(req.Params.URI, infos)
}

// handlePromptFileResource returns the raw content of one prompt file.
func (s *Server) handlePromptFileResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractPromptName(req.Params.URI)
	if name == "" || !file.IsPromptFile(name) || s.ports.PromptDir == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := os.ReadFile(filepath.Join(s.ports.PromptDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("reading prompt %s: %w", name, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     string(data),
		}},
	}, nil
}

// extractPromptName extracts the file name from raylink://prompts/{name}.
// Names that would escape the prompts directory are rejected.
func extractPromptName(uri string) string {
	const prefix = uriScheme + "prompts/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	name, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil || name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return ""
	}
	return name
}
