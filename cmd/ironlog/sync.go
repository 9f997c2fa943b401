// ABOUTME: CLI commands for sync queue inspection and control.
// ABOUTME: status, now (flush), push (full upload), and clear.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Inspect and control remote sync",
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show pending queued writes",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := appStore.QueueLen()
		if n == 0 {
			color.Green("✓ Sync queue empty")
		} else {
			fmt.Printf("%d write(s) queued for retry\n", n)
		}
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Flush the sync queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := appStore.Queue()
		if q == nil {
			fmt.Println("Remote sync is off.")
			return nil
		}
		before := q.Len()
		q.Flush(cmd.Context())
		after := q.Len()
		color.Green("✓ Flushed %d of %d queued write(s)", before-after, before)
		if after > 0 {
			fmt.Printf("%d write(s) still queued\n", after)
		}
		return nil
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push all local data to the remote store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appStore.SyncAll(cmd.Context()); err != nil {
			return fmt.Errorf("push incomplete: %w", err)
		}
		color.Green("✓ All local data pushed")
		return nil
	},
}

var syncClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all queued writes (they will not be retried)",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := appStore.Queue()
		if q == nil {
			fmt.Println("Remote sync is off.")
			return nil
		}
		n := q.Len()
		q.Clear()
		color.Yellow("Dropped %d queued write(s)", n)
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncClearCmd)
}
