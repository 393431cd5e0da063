package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jamesWalker55/tag-repo/internal/diff"
	"github.com/jamesWalker55/tag-repo/internal/ui"
	"github.com/jamesWalker55/tag-repo/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the repository and auto-sync on changes",
	Long: `Watch the repository for file changes and keep the database in sync.

This runs in the foreground. Changes are debounced, then the whole tree
is rescanned so moves and renames keep their tags.

The watcher:
- Monitors every folder in the repository
- Waits for events to settle before syncing (default 500ms)
- Ignores the database directory and .git/

Examples:
  # Watch the default repository
  trp watch

  # Watch with debug output
  trp watch --debug

  # Run in background (shell-dependent)
  trp watch &`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Bool("debug", false, "Enable debug logging")
	watchCmd.Flags().Duration("debounce", 500*time.Millisecond, "How long to wait for events to settle")
}

func runWatch(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	debounce, _ := cmd.Flags().GetDuration("debounce")

	r, err := openRepo()
	if err != nil {
		return handleError(ErrDatabaseError, err, "")
	}
	defer r.Close()

	// Catch up on anything that changed while we weren't watching
	if _, err := r.SyncAll(); err != nil {
		return handleError(ErrDatabaseError, err, "")
	}

	w, err := watcher.New(watcher.Config{
		Repo:          r,
		DebounceDelay: debounce,
		Debug:         debug,
		OnSync: func(d diff.Diff, err error) {
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.Errorf("sync failed: %v", err))
				return
			}
			if len(d.Created)+len(d.Deleted)+len(d.Renamed) > 0 {
				fmt.Println(ui.Successf("%d created, %d deleted, %d renamed",
					len(d.Created), len(d.Deleted), len(d.Renamed)))
			}
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nShutting down watcher...")
		cancel()
	}()

	fmt.Printf("Watching repository: %s\n", r.Root())
	fmt.Println("Press Ctrl+C to stop")

	return w.Start(ctx)
}
