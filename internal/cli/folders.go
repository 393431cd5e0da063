package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesWalker55/tag-repo/internal/tree"
	"github.com/jamesWalker55/tag-repo/internal/ui"
)

var foldersTree bool

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List folders containing tracked files",
	Long: `Lists every folder that contains at least one tracked file.

With --tree, prints the folder hierarchy instead of a flat list.

Examples:
  trp folders
  trp folders --tree`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer r.Close()

		if foldersTree {
			root, err := r.DirStructure()
			if err != nil {
				return handleError(ErrDatabaseError, err, "")
			}
			if isJSONOutput() {
				outputSuccess(root, nil)
				return nil
			}
			printFolderTree(root, 0)
			return nil
		}

		folders, err := r.AllFolders()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"folders": folders,
			}, &Meta{Count: len(folders)})
			return nil
		}

		list := ui.NewList()
		for _, folder := range folders {
			if folder == "" {
				folder = "."
			}
			list.Add(ui.FilePath(folder))
		}
		fmt.Print(list.String())

		return nil
	},
}

func printFolderTree(folder *tree.Folder, depth int) {
	names := make([]string, 0, len(folder.Children))
	for name := range folder.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s%s\n", strings.Repeat("  ", depth), ui.FilePath(name))
		printFolderTree(folder.Children[name], depth+1)
	}
}

func init() {
	foldersCmd.Flags().BoolVar(&foldersTree, "tree", false, "Print the folder hierarchy")
	rootCmd.AddCommand(foldersCmd)
}
