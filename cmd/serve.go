package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	mcpserver "github.com/minhvu-dev/shopee-track/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	initMarketplaces()
	initMCPDeps()

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting shopee-track MCP server on stdio...")

	if err := mcpserver.Serve(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
	return nil
}
