package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamesWalker55/tag-repo/internal/query"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Show the SQL a tag query compiles to",
	Long: `Compiles a tag query and prints the resulting SQL condition.

Useful for debugging queries and for embedding tag searches in external
SQL tooling against the repository database.

Examples:
  trp sql 'drums kick'
  trp sql 'a | -in:archive'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frag, err := query.ToSQL(args[0])
		if err != nil {
			return handleError(ErrQueryInvalid, err, "Run 'trp docs query-language' for the query syntax")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"query": args[0],
				"sql":   frag,
			}, nil)
			return nil
		}

		fmt.Println(frag)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sqlCmd)
}
