package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/raylink/internal/adapters/driving/mcp"
	"github.com/custodia-labs/raylink/internal/core/ports/driven"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can build,
open and decode deeplinks.

Tools: build_deeplink, open_deeplink, decode_deeplink, check_inputs.
Resources: raylink://target, raylink://prompts, raylink://prompts/{name}
(the latter two serve the prompts.directory setting).

By default, the server communicates over stdio using JSON-RPC. Use --port
to start an HTTP server instead, e.g. for the MCP Inspector.

Examples:
  # Stdio mode (default)
  raylink mcp serve

  # HTTP mode
  raylink mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "raylink": {
        "command": "/path/to/raylink",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{Deeplink: deeplinkService}
	if configStore != nil {
		ports.PromptDir = configStore.GetString(driven.ConfigKeyPromptDir)
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
