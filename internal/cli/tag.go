package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesWalker55/tag-repo/internal/filetype"
	"github.com/jamesWalker55/tag-repo/internal/repo"
	"github.com/jamesWalker55/tag-repo/internal/slugs"
	"github.com/jamesWalker55/tag-repo/internal/ui"
)

var (
	tagQueryFlag string
	tagRawFlag   bool
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Add, remove, or show tags on files",
}

var tagAddCmd = &cobra.Command{
	Use:   "add <path|--query q> <tag>...",
	Short: "Add tags to a file or to every query match",
	Long: `Adds tags to a file, or with --query to every matching file.

Tag names are normalized to lowercase slugs so they stay queryable
(e.g. "Drum Kit" becomes drum-kit). Use --raw to store names as given.

Examples:
  trp tag add drums/kick.wav drums punchy
  trp tag add --query 'in:drums' drums
  trp tag add --raw notes.txt TODO`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTagEdit(args, true)
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:     "remove <path|--query q> <tag>...",
	Aliases: []string{"rm"},
	Short:   "Remove tags from a file or from every query match",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTagEdit(args, false)
	},
}

var tagShowCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Show the tags on a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer r.Close()

		item, err := r.ItemByPath(args[0])
		if errors.Is(err, repo.ErrItemNotFound) {
			return handleErrorMsg(ErrItemNotFound,
				fmt.Sprintf("file not tracked: %s", args[0]),
				"Run 'trp sync' if the file was added recently")
		}
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(itemView{
				ID:   item.ID,
				Path: item.Path,
				Tags: item.Tags,
				Type: filetype.Of(item.Path).String(),
			}, nil)
			return nil
		}

		if len(item.Tags) == 0 {
			fmt.Printf("%s has no tags\n", ui.FilePath(item.Path))
			return nil
		}
		fmt.Printf("%s  %s\n", ui.FilePath(item.Path), strings.Join(item.Tags, " "))
		return nil
	},
}

func runTagEdit(args []string, add bool) error {
	var path string
	var tags []string
	if tagQueryFlag == "" {
		if len(args) < 2 {
			return handleErrorMsg(ErrMissingArgument, "specify a path and at least one tag", "")
		}
		path = args[0]
		tags = args[1:]
	} else {
		tags = args
	}

	if !tagRawFlag {
		tags = slugs.Tags(tags)
	}
	if len(tags) == 0 {
		return handleErrorMsg(ErrInvalidInput, "no usable tag names given", "")
	}

	r, err := openRepo()
	if err != nil {
		return handleError(ErrDatabaseError, err, "")
	}
	defer r.Close()

	var ids []int64
	if tagQueryFlag != "" {
		ids, err = r.QueryIDs(tagQueryFlag)
		if err != nil {
			var qerr *repo.InvalidQueryError
			if errors.As(err, &qerr) {
				return handleError(ErrQueryInvalid, qerr.Err, "Run 'trp docs query-language' for the query syntax")
			}
			return handleError(ErrDatabaseError, err, "")
		}
	} else {
		item, err := r.ItemByPath(path)
		if errors.Is(err, repo.ErrItemNotFound) {
			return handleErrorMsg(ErrItemNotFound,
				fmt.Sprintf("file not tracked: %s", path),
				"Run 'trp sync' if the file was added recently")
		}
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		ids = []int64{item.ID}
	}

	if add {
		err = r.BatchInsertTags(ids, tags)
	} else {
		err = r.BatchRemoveTags(ids, tags)
	}
	if err != nil {
		return handleError(ErrDatabaseError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"tags": tags,
		}, &Meta{Count: len(ids)})
		return nil
	}

	verb := "Tagged"
	if !add {
		verb = "Untagged"
	}
	noun := "files"
	if len(ids) == 1 {
		noun = "file"
	}
	fmt.Println(ui.Successf("%s %d %s: %s", verb, len(ids), noun, strings.Join(tags, " ")))
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{tagAddCmd, tagRemoveCmd} {
		cmd.Flags().StringVarP(&tagQueryFlag, "query", "q", "", "Apply to every file matching a tag query")
		cmd.Flags().BoolVar(&tagRawFlag, "raw", false, "Store tag names without normalizing")
	}
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	tagCmd.AddCommand(tagShowCmd)
	rootCmd.AddCommand(tagCmd)
}
