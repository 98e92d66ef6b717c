package cmd

import (
	"github.com/axees/scout/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [creators-file]",
	Short: "Start the Scout MCP server",
	Long:  `Launch an MCP server that allows AI agents to discover creators and price campaigns via standard tools.`,
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		src, err := buildSource()
		if err != nil {
			return err
		}
		return mcp.StartMCPServer(rootCtx, cfg, src)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
