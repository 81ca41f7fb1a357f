package main

import (
	"github.com/ironsheep/image-watermark/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout",
	Long: `serve speaks the Model Context Protocol (JSON-RPC 2.0, one message per line)
over stdin/stdout. Configure it in your MCP client.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.New(server.WithDebug(debugEnabled()))
		return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
