// ABOUTME: MCP server command for daterange CLI
// ABOUTME: Starts stdio-based MCP server for AI agent integration

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/daterange/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI agents",
	Long: `Start the Model Context Protocol (MCP) server on stdio.

This allows AI agents like Claude to list range shortcuts, count
weekends, lay out month grids, and replay picks through structured tools.

The server communicates via JSON-RPC on stdin/stdout. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := pickerOptions()
		server, err := mcp.NewServer(mcp.Options{
			PredefinedRanges: opts.PredefinedRanges,
			Layout:           opts.Layout,
			Now:              opts.Now,
			Logger:           logger,
			Version:          Version,
		})
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}

		if err := server.ServeStdio(); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
