package cli

import (
	"github.com/cyphera/cyphera-pitch/internal/mcpserver"
	"github.com/spf13/cobra"
)

func newMCPCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve chapters and the deck to MCP clients over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := o.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			return mcpserver.New(store, o.version).ServeStdio()
		},
	}
}
