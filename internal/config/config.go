// Package config handles global tagrepo configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global tagrepo configuration.
type Config struct {
	// DefaultRepo is the name of the default repository (from Repos map).
	DefaultRepo string `toml:"default_repo"`

	// Repos is a map of repository names to root paths.
	Repos map[string]string `toml:"repos"`

	// Scan controls which files get tracked when syncing.
	Scan ScanConfig `toml:"scan"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// ScanConfig controls which files get tracked when syncing.
type ScanConfig struct {
	// ExcludedNames are file or folder names skipped anywhere in the tree.
	ExcludedNames []string `toml:"excluded_names"`

	// ExcludedPaths are paths relative to the repository root to skip.
	ExcludedPaths []string `toml:"excluded_paths"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown code blocks.
	// Example values: "monokai", "dracula", "github", "nord".
	CodeTheme string `toml:"code_theme"`
}

// GetRepoPath returns the root path for a named repository.
// If name is empty, returns the default repository path.
func (c *Config) GetRepoPath(name string) (string, error) {
	if name == "" {
		name = c.DefaultRepo
	}
	if name == "" {
		return "", fmt.Errorf("no default repository configured")
	}

	if c.Repos != nil {
		if path, ok := c.Repos[name]; ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("repository '%s' not found in config", name)
}

// ListRepos returns all configured repositories with their paths.
func (c *Config) ListRepos() map[string]string {
	result := make(map[string]string)
	for name, path := range c.Repos {
		result[name] = path
	}
	return result
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/tagrepo/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	// Prefer XDG-style ~/.config/tagrepo/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "tagrepo", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	// Fall back to XDG config dir or OS-specific location
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "tagrepo", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file at the default path if it
// doesn't exist.
func CreateDefault() (string, error) {
	return CreateDefaultAt(DefaultPath())
}

// CreateDefaultAt creates a commented default config file at the given path
// if it doesn't exist.
func CreateDefaultAt(configPath string) (string, error) {
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# tagrepo Configuration

# Default repository name (must exist in [repos] below)
# default_repo = "samples"

# Named repositories
# [repos]
# samples = "/path/to/your/samples"
# photos = "/path/to/photos"

# File names and paths skipped when scanning a repository.
# [scan]
# excluded_names = [".DS_Store", "Thumbs.db"]
# excluded_paths = ["render/cache"]

# Optional UI accent color for headers/links in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
