// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

AVAILABLE TOOLS:

  get_today         Today's session, if in progress
  start_workout     Start (or resume) today's workout
  log_set           Log one set of an exercise
  complete_workout  Mark today's session completed
  save_steps        Record a day's step count
  get_next_workout  Next scheduled plan day and exercises
  get_stats         Streak and weekly stats
  update_settings   Change units, goals, scheduling override
  export_data       Full JSON export
  sync_status       Pending queued writes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(appStore)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}
