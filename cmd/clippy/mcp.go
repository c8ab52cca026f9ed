package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ironsheep/clippy/internal/clipboard"
	"github.com/ironsheep/clippy/internal/server"
)

func newMCPCmd(p clipboard.Provider, stdin io.Reader, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve clipboard tools over MCP on stdin/stdout",
		Long: `Runs an MCP server speaking JSON-RPC 2.0 over stdin/stdout.
Configure it in your MCP client; logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.New(p, Version).Run(cmd.Context(), stdin, stdout)
		},
	}
}
