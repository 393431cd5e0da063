package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesWalker55/tag-repo/internal/config"
)

var (
	configSetDefaultRepo string
	configSetRepo        string
	configSetUIAccent    string
	configSetUICodeTheme string

	configUnsetDefaultRepo bool
	configUnsetRepo        string
	configUnsetUIAccent    bool
	configUnsetUICodeTheme bool
)

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func loadConfigAllowMissing() (*config.Config, string, bool, error) {
	path := resolveConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config.Config{}, path, false, nil
	}
	loadedCfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, path, true, err
	}
	return loadedCfg, path, true, nil
}

func configData(cfg *config.Config, path string, exists bool) map[string]interface{} {
	return map[string]interface{}{
		"config_path":  path,
		"exists":       exists,
		"default_repo": strings.TrimSpace(cfg.DefaultRepo),
		"repos":        cfg.ListRepos(),
		"scan": map[string]interface{}{
			"excluded_names": cfg.Scan.ExcludedNames,
			"excluded_paths": cfg.Scan.ExcludedPaths,
		},
		"ui": map[string]interface{}{
			"accent":     strings.TrimSpace(cfg.UI.Accent),
			"code_theme": strings.TrimSpace(cfg.UI.CodeTheme),
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, path, exists, err := loadConfigAllowMissing()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(configData(cfg, path, exists), nil)
		return nil
	}

	if !exists {
		fmt.Printf("Config file does not exist: %s\n", path)
		fmt.Println("Run 'trp config init' to create it.")
		return nil
	}

	fmt.Printf("config: %s\n", path)
	if v := strings.TrimSpace(cfg.DefaultRepo); v != "" {
		fmt.Printf("default_repo: %s\n", v)
	}
	if v := strings.TrimSpace(cfg.UI.Accent); v != "" {
		fmt.Printf("ui.accent: %s\n", v)
	}
	if v := strings.TrimSpace(cfg.UI.CodeTheme); v != "" {
		fmt.Printf("ui.code_theme: %s\n", v)
	}
	if len(cfg.Scan.ExcludedNames) > 0 {
		fmt.Printf("scan.excluded_names: %s\n", strings.Join(cfg.Scan.ExcludedNames, ", "))
	}
	if len(cfg.Scan.ExcludedPaths) > 0 {
		fmt.Printf("scan.excluded_paths: %s\n", strings.Join(cfg.Scan.ExcludedPaths, ", "))
	}

	repos := cfg.ListRepos()
	if len(repos) == 0 {
		fmt.Println("repos: (none)")
		return nil
	}
	names := make([]string, 0, len(repos))
	for name := range repos {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("repos:")
	for _, name := range names {
		fmt.Printf("  %s = %s\n", name, repos[name])
	}

	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config.toml settings",
	Long: `Manage global tagrepo config.toml settings.

Use this to initialize, inspect, and edit machine-level configuration:
the named repositories, the default repository, and UI theming.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default global config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := resolveConfigPath()
		_, statErr := os.Stat(targetPath)
		existed := statErr == nil
		if statErr != nil && !os.IsNotExist(statErr) {
			return handleError(ErrFileReadError, statErr, "")
		}

		createdPath, err := config.CreateDefaultAt(targetPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": createdPath,
				"created":     !existed,
			}, nil)
			return nil
		}

		if existed {
			fmt.Printf("Config already exists: %s\n", createdPath)
		} else {
			fmt.Printf("Created config: %s\n", createdPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one or more global config.toml fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, _, err := loadConfigAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		changed := make([]string, 0, 4)

		if cmd.Flags().Changed("repo") {
			name, repoPath, ok := strings.Cut(strings.TrimSpace(configSetRepo), "=")
			name = strings.TrimSpace(name)
			repoPath = strings.TrimSpace(repoPath)
			if !ok || name == "" || repoPath == "" {
				return handleErrorMsg(ErrInvalidInput, "repo must be name=/path/to/repo", "")
			}
			if cfg.Repos == nil {
				cfg.Repos = make(map[string]string)
			}
			cfg.Repos[name] = repoPath
			changed = append(changed, "repos."+name)
		}

		if cmd.Flags().Changed("default-repo") {
			value := strings.TrimSpace(configSetDefaultRepo)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "default-repo cannot be empty; use 'trp config unset --default-repo' to clear it", "")
			}
			if _, err := cfg.GetRepoPath(value); err != nil {
				return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("default-repo '%s' is not configured", value), "Add it first with 'trp config set --repo name=/path'")
			}
			cfg.DefaultRepo = value
			changed = append(changed, "default_repo")
		}

		if cmd.Flags().Changed("ui-accent") {
			value := strings.TrimSpace(configSetUIAccent)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "ui-accent cannot be empty; use 'trp config unset --ui-accent' to clear it", "")
			}
			cfg.UI.Accent = value
			changed = append(changed, "ui.accent")
		}

		if cmd.Flags().Changed("ui-code-theme") {
			value := strings.TrimSpace(configSetUICodeTheme)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "ui-code-theme cannot be empty; use 'trp config unset --ui-code-theme' to clear it", "")
			}
			cfg.UI.CodeTheme = value
			changed = append(changed, "ui.code_theme")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields provided; set at least one --repo/--default-repo/--ui-accent/--ui-code-theme", "")
		}

		if err := config.SaveTo(path, cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			data := configData(cfg, path, true)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Updated config: %s\n", path)
		fmt.Printf("changed: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Clear one or more global config.toml fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, exists, err := loadConfigAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if !exists {
			return handleErrorMsg(ErrFileNotFound, fmt.Sprintf("config file not found: %s", path), "Run 'trp config init' first")
		}

		changed := make([]string, 0, 4)
		if cmd.Flags().Changed("repo") {
			name := strings.TrimSpace(configUnsetRepo)
			if _, ok := cfg.Repos[name]; !ok {
				return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("repo '%s' is not configured", name), "")
			}
			delete(cfg.Repos, name)
			if cfg.DefaultRepo == name {
				cfg.DefaultRepo = ""
				changed = append(changed, "default_repo")
			}
			changed = append(changed, "repos."+name)
		}
		if configUnsetDefaultRepo {
			cfg.DefaultRepo = ""
			changed = append(changed, "default_repo")
		}
		if configUnsetUIAccent {
			cfg.UI.Accent = ""
			changed = append(changed, "ui.accent")
		}
		if configUnsetUICodeTheme {
			cfg.UI.CodeTheme = ""
			changed = append(changed, "ui.code_theme")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields selected; pass one or more unset flags", "")
		}

		if err := config.SaveTo(path, cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			data := configData(cfg, path, true)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Updated config: %s\n", path)
		fmt.Printf("cleared: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current global config.toml values",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	configSetCmd.Flags().StringVar(&configSetRepo, "repo", "", "Add or update a named repository (name=/path/to/repo)")
	configSetCmd.Flags().StringVar(&configSetDefaultRepo, "default-repo", "", "Set default_repo to a configured repository name")
	configSetCmd.Flags().StringVar(&configSetUIAccent, "ui-accent", "", "Set UI accent color (ANSI 0-255 or #RRGGBB)")
	configSetCmd.Flags().StringVar(&configSetUICodeTheme, "ui-code-theme", "", "Set markdown code theme name")

	configUnsetCmd.Flags().StringVar(&configUnsetRepo, "repo", "", "Remove a named repository")
	configUnsetCmd.Flags().BoolVar(&configUnsetDefaultRepo, "default-repo", false, "Clear default_repo")
	configUnsetCmd.Flags().BoolVar(&configUnsetUIAccent, "ui-accent", false, "Clear ui.accent")
	configUnsetCmd.Flags().BoolVar(&configUnsetUICodeTheme, "ui-code-theme", false, "Clear ui.code_theme")

	rootCmd.AddCommand(configCmd)
}
