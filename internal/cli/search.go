package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jamesWalker55/tag-repo/internal/filetype"
	"github.com/jamesWalker55/tag-repo/internal/repo"
	"github.com/jamesWalker55/tag-repo/internal/ui"
)

var searchPathsOnly bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find files by tag query",
	Long: `Lists files matching a tag query. With no query, lists every file.

Query syntax:
  a b          files tagged both a and b
  a | b        files tagged a or b
  -a           files not tagged a
  "drum kit"   quoted tag (spaces allowed)
  in:dir       files under a folder
  children:dir files under a folder or the folder itself as a prefix
  inpath:text  files whose path contains text
  ext:wav      files with an extension
  leading:dir  files whose path starts with a folder prefix
  ( ... )      grouping

Examples:
  trp search drums
  trp search 'kick | snare -in:archive'
  trp search 'ext:wav "drum kit"' --paths`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := ""
		if len(args) > 0 {
			q = args[0]
		}

		r, err := openRepo()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer r.Close()

		start := time.Now()
		items, err := r.QueryItems(q)
		if err != nil {
			var qerr *repo.InvalidQueryError
			if errors.As(err, &qerr) {
				return handleError(ErrQueryInvalid, qerr.Err, "Run 'trp docs query-language' for the query syntax")
			}
			return handleError(ErrDatabaseError, err, "")
		}
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			views := make([]itemView, len(items))
			for i, item := range items {
				views[i] = itemView{
					ID:   item.ID,
					Path: item.Path,
					Tags: item.Tags,
					Type: filetype.Of(item.Path).String(),
				}
			}
			outputSuccess(map[string]interface{}{
				"query": q,
				"items": views,
			}, &Meta{Count: len(items), QueryTimeMs: elapsed})
			return nil
		}

		if len(items) == 0 {
			fmt.Printf("No files match: %s\n", q)
			return nil
		}

		if searchPathsOnly {
			for _, item := range items {
				fmt.Println(item.Path)
			}
			return nil
		}

		for _, item := range items {
			if len(item.Tags) > 0 {
				fmt.Printf("%s  %s\n", ui.FilePath(item.Path), ui.Hint(strings.Join(item.Tags, " ")))
			} else {
				fmt.Println(ui.FilePath(item.Path))
			}
		}
		fmt.Println(ui.Hint(fmt.Sprintf("\n%d files", len(items))))

		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchPathsOnly, "paths", false, "Print bare paths only (for piping)")
	rootCmd.AddCommand(searchCmd)
}
