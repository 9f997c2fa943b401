// ABOUTME: Root Cobra command for ironlog CLI.
// ABOUTME: Handles store and remote lifecycle via PersistentPre/PostRunE.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/config"
	"github.com/harperreed/ironlog/internal/localstore"
	"github.com/harperreed/ironlog/internal/store"
)

var (
	cfg        *config.Config
	localStore *localstore.Store
	appStore   *store.Store
	remoteIO   io.Closer
	stopSweep  context.CancelFunc
)

var rootCmd = &cobra.Command{
	Use:   "ironlog",
	Short: "Offline-first workout tracker",
	Long: `Ironlog tracks workouts, sets, and daily steps on a fixed 7-day plan.

Everything is stored locally first, so logging works with no connection;
writes sync to the remote record store when the network allows, and
anything that fails is queued and retried automatically.

QUICK START:

  $ ironlog today                       # Show today's session
  $ ironlog today --start               # Start today's workout
  $ ironlog log incline-db-press 27.5 8 # Log a set: exercise, weight, reps
  $ ironlog done --duration 55          # Complete the workout
  $ ironlog steps 9200                  # Record today's steps
  $ ironlog next                        # What workout is next?
  $ ironlog stats                       # Streak and weekly stats

SYNC:

  $ ironlog sync status   # Pending queued writes
  $ ironlog sync now      # Flush the queue
  $ ironlog sync push     # Push everything to the remote store

MCP INTEGRATION:

  Run 'ironlog mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "ironlog": { "command": "ironlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Local state lives at ~/.local/share/ironlog. The remote backend is
  configurable (Charm Cloud by default, SQLite, or off) via
  ~/.config/ironlog/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		localStore, err = localstore.Open(filepath.Join(cfg.GetDataDir(), "local"))
		if err != nil {
			return fmt.Errorf("failed to open local store: %w", err)
		}

		remoteSvc, err := cfg.OpenRemote()
		if err != nil {
			// Remote trouble never blocks local use.
			fmt.Fprintf(os.Stderr, "warning: remote unavailable, working offline: %v\n", err)
			remoteSvc = nil
		}
		if c, ok := remoteSvc.(io.Closer); ok {
			remoteIO = c
		}

		appStore = store.Open(store.Options{
			Local:    localStore,
			Remote:   remoteSvc,
			Debounce: cfg.GetDebounce(),
		})

		if remoteSvc != nil {
			var sweepCtx context.Context
			sweepCtx, stopSweep = context.WithCancel(context.Background())
			appStore.Queue().StartSweeper(sweepCtx, cfg.GetSweepInterval())

			// Best-effort pull; offline is fine.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := appStore.LoadRemote(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not load remote state: %v\n", err)
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if stopSweep != nil {
			stopSweep()
		}
		if appStore != nil {
			appStore.Close()
		}
		if remoteIO != nil {
			_ = remoteIO.Close()
		}
		if localStore != nil {
			return localStore.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(mcpCmd)
}
