package cmd

import (
	"github.com/lumenkit/kbscore/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the kbscore MCP server",
	Long:  `Launch an MCP server that allows AI agents to score knowledge bases via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The mcp command takes no snapshot argument; tools pass paths per call.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
