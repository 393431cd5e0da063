package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jamesWalker55/tag-repo/internal/repo"
	"github.com/jamesWalker55/tag-repo/internal/ui"
)

var importReplace bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tags from a YAML export",
	Long: `Reads a 'trp export' YAML file and applies its tags.

By default imported tags are merged with existing ones; --replace
overwrites each listed file's tags instead. Files in the export that are
not tracked in this repository are reported and skipped.

Examples:
  trp import tags.yaml
  trp import --replace tags.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		var entries []exportEntry
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return handleError(ErrInvalidInput, fmt.Errorf("failed to parse %s: %w", args[0], err), "")
		}

		r, err := openRepo()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer r.Close()

		applied := 0
		var missing []string
		for _, entry := range entries {
			item, err := r.ItemByPath(entry.Path)
			if errors.Is(err, repo.ErrItemNotFound) {
				missing = append(missing, entry.Path)
				continue
			}
			if err != nil {
				return handleError(ErrDatabaseError, err, "")
			}

			if importReplace {
				err = r.UpdateTags(item.ID, entry.Tags)
			} else {
				err = r.InsertTags(item.ID, entry.Tags)
			}
			if err != nil {
				return handleError(ErrDatabaseError, err, "")
			}
			applied++
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"applied": applied,
				"missing": missing,
			}, &Meta{Count: applied})
			return nil
		}

		fmt.Println(ui.Successf("Applied tags to %d files", applied))
		for _, path := range missing {
			fmt.Println(ui.Warningf("not tracked, skipped: %s", path))
		}
		if len(missing) > 0 {
			fmt.Println(ui.Hint("Run 'trp sync' and import again to pick up new files."))
		}
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Replace existing tags instead of merging")
	rootCmd.AddCommand(importCmd)
}
