package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jamesWalker55/tag-repo/internal/ui"
)

// exportEntry is one file in a YAML export. Only tagged files are exported;
// untagged files carry no information the filesystem doesn't.
type exportEntry struct {
	Path string   `yaml:"path"`
	Tags []string `yaml:"tags"`
}

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tags to YAML",
	Long: `Writes every tagged file and its tags as YAML.

The export is plain data, safe to commit to version control or carry to
another machine. Restore it with 'trp import'.

Examples:
  trp export > tags.yaml
  trp export -o tags.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openRepo()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer r.Close()

		items, err := r.AllItems()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		var entries []exportEntry
		for _, item := range items {
			if len(item.Tags) == 0 {
				continue
			}
			entries = append(entries, exportEntry{Path: item.Path, Tags: item.Tags})
		}

		data, err := yaml.Marshal(entries)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if exportOutput == "" || exportOutput == "-" {
			fmt.Print(string(data))
			return nil
		}

		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		if !isJSONOutput() {
			fmt.Println(ui.Successf("Exported %d tagged files to %s", len(entries), exportOutput))
		} else {
			outputSuccess(map[string]interface{}{
				"output": exportOutput,
			}, &Meta{Count: len(entries)})
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
