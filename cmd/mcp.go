package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/prioritize/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the Prioritize MCP server",
	Long:    `Launch an MCP server that allows AI agents to compute priority weights and rank options via standard tools.`,
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
