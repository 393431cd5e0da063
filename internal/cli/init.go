package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesWalker55/tag-repo/internal/repo"
)

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Initialize a new tag repository",
	Long: `Creates a tag repository at the specified path and scans its files.

Creates:
  - .tagrepo/          (database directory)
  - .tagrepo/tags.db   (tag database)
  - .gitignore entry for .tagrepo/ (if a .gitignore exists or is created)

Existing files are tracked immediately; tag them with 'trp tag add'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		fmt.Printf("Initializing repository at: %s\n", path)

		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create repository directory: %w", err)
		}

		r, err := repo.Open(path)
		if err != nil {
			return err
		}
		defer r.Close()

		// Keep the database out of version control
		gitignorePath := filepath.Join(path, ".gitignore")
		gitignoreStatus := ""
		if data, err := os.ReadFile(gitignorePath); err == nil {
			if !strings.Contains(string(data), repo.DataDirName+"/") {
				content := strings.TrimRight(string(data), "\n") + "\n\n# tagrepo database\n" + repo.DataDirName + "/\n"
				if err := os.WriteFile(gitignorePath, []byte(content), 0644); err != nil {
					return fmt.Errorf("failed to update .gitignore: %w", err)
				}
				gitignoreStatus = "updated"
			}
		}

		d, err := r.SyncAll()
		if err != nil {
			return fmt.Errorf("failed to scan repository: %w", err)
		}

		fmt.Printf("✓ Created %s/ directory\n", repo.DataDirName)
		if gitignoreStatus == "updated" {
			fmt.Println("✓ Updated .gitignore")
		}
		fmt.Printf("✓ Tracked %d files\n", len(d.Created))
		fmt.Println("\nRepository initialized! Tag files with 'trp tag add'.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
