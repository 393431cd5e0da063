package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamesWalker55/tag-repo/internal/ui"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags with usage counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer r.Close()

		tags, err := r.Tags()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			type tagView struct {
				Name  string `json:"name"`
				Files int64  `json:"files"`
				Count int64  `json:"count"`
			}
			views := make([]tagView, 0, len(tags))
			for _, tag := range tags {
				if tag.Column != "tags" {
					continue
				}
				views = append(views, tagView{Name: tag.Name, Files: tag.Docs, Count: tag.Count})
			}
			outputSuccess(map[string]interface{}{
				"tags": views,
			}, &Meta{Count: len(views)})
			return nil
		}

		table := ui.NewTable(2)
		total := 0
		for _, tag := range tags {
			if tag.Column != "tags" {
				continue
			}
			noun := "files"
			if tag.Docs == 1 {
				noun = "file"
			}
			table.AddRow(ui.Tag(tag.Name), ui.Hint(fmt.Sprintf("%d %s", tag.Docs, noun)))
			total++
		}

		if total == 0 {
			fmt.Println("No tags in the repository yet.")
			return nil
		}
		fmt.Printf("Tags %s:\n\n", ui.Count(total, "tag", "tags"))
		fmt.Print(table.String())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
