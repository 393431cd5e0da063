// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jamesWalker55/tag-repo/internal/config"
	"github.com/jamesWalker55/tag-repo/internal/ui"
)

var (
	// Global flags
	repoName     string // Named repository from config
	repoPathFlag string // Explicit path
	configPath   string

	// Resolved values
	resolvedRepoPath string
	cfg              *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trp",
	Short: "tagrepo - tag files and find them again",
	Long: `tagrepo attaches searchable tags to the files in a directory tree.

Tags live in a SQLite database inside the repository, the files themselves
are never modified. Queries combine tags with boolean operators and path
filters, so "drums kick | snare -in:archive" finds what it says.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip repository resolution for commands that don't need it
		switch cmd.Name() {
		case "init", "docs", "sql", "config", "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil {
			switch cmd.Parent().Name() {
			case "config", "completion":
				return nil
			}
		}

		// Load config
		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		// Resolve repository path: explicit path > named repo > default
		if repoPathFlag != "" {
			resolvedRepoPath = repoPathFlag
		} else if repoName != "" {
			resolvedRepoPath, err = cfg.GetRepoPath(repoName)
			if err != nil {
				return fmt.Errorf("repository '%s' not found\n\nAdd it to the [repos] table in %s", repoName, config.DefaultPath())
			}
		} else {
			resolvedRepoPath, err = cfg.GetRepoPath("")
			if err != nil {
				return fmt.Errorf(`no repository specified

Either:
  1. Use --repo <name> (from config)
  2. Use --repo-path /path/to/repo
  3. Set default_repo in %s
  4. Run 'trp init /path/to/repo' to create one`, config.DefaultPath())
			}
		}

		// Verify repository exists
		if _, err := os.Stat(resolvedRepoPath); os.IsNotExist(err) {
			return fmt.Errorf("repository not found: %s\n\nRun 'trp init %s' to create it", resolvedRepoPath, resolvedRepoPath)
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&repoName, "repo", "r", "", "Named repository from config")
	rootCmd.PersistentFlags().StringVar(&repoPathFlag, "repo-path", "", "Explicit path to repository directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getRepoPath returns the resolved repository path.
func getRepoPath() string {
	return resolvedRepoPath
}

func loadGlobalConfig() (*config.Config, error) {
	var loadedCfg *config.Config
	var err error
	if configPath != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}
	return loadedCfg, nil
}
