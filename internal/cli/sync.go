package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamesWalker55/tag-repo/internal/ui"
)

var syncVerbose bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the database with files on disk",
	Long: `Scans the repository and updates the database to match.

New files are tracked, deleted files are dropped, and moved files keep
their tags: a delete/create pair with the same filename is treated as a
rename.

Examples:
  trp sync
  trp sync --verbose`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer r.Close()

		d, err := r.SyncAll()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			renames := make([]map[string]string, len(d.Renamed))
			for i, ren := range d.Renamed {
				renames[i] = map[string]string{"from": ren.From, "to": ren.To}
			}
			outputSuccess(map[string]interface{}{
				"created": d.Created,
				"deleted": d.Deleted,
				"renamed": renames,
			}, &Meta{Count: len(d.Created) + len(d.Deleted) + len(d.Renamed)})
			return nil
		}

		if len(d.Created) == 0 && len(d.Deleted) == 0 && len(d.Renamed) == 0 {
			fmt.Println("Already up to date.")
			return nil
		}

		if syncVerbose {
			for _, path := range d.Created {
				fmt.Printf("  + %s\n", ui.FilePath(path))
			}
			for _, path := range d.Deleted {
				fmt.Printf("  - %s\n", path)
			}
			for _, ren := range d.Renamed {
				fmt.Printf("  > %s -> %s\n", ren.From, ui.FilePath(ren.To))
			}
		}
		fmt.Println(ui.Successf("%d created, %d deleted, %d renamed",
			len(d.Created), len(d.Deleted), len(d.Renamed)))

		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVarP(&syncVerbose, "verbose", "v", false, "List every change")
	rootCmd.AddCommand(syncCmd)
}
