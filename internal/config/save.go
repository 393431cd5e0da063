package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jamesWalker55/tag-repo/internal/atomicfile"
)

// persistedConfig mirrors Config but omits empty fields, so a saved config
// file only contains what the user actually set.
type persistedConfig struct {
	DefaultRepo *string              `toml:"default_repo,omitempty"`
	Repos       map[string]string    `toml:"repos,omitempty"`
	Scan        *persistedScan       `toml:"scan,omitempty"`
	UI          *persistedUISettings `toml:"ui,omitempty"`
}

type persistedScan struct {
	ExcludedNames []string `toml:"excluded_names,omitempty"`
	ExcludedPaths []string `toml:"excluded_paths,omitempty"`
}

type persistedUISettings struct {
	Accent    *string `toml:"accent,omitempty"`
	CodeTheme *string `toml:"code_theme,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Save writes the global config to the default config path.
func Save(cfg *Config) error {
	return SaveTo(DefaultPath(), cfg)
}

// SaveTo writes the global config to a specific path atomically.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		DefaultRepo: nonEmptyPtr(cfg.DefaultRepo),
	}
	if len(cfg.Repos) > 0 {
		out.Repos = cfg.Repos
	}
	if len(cfg.Scan.ExcludedNames) > 0 || len(cfg.Scan.ExcludedPaths) > 0 {
		out.Scan = &persistedScan{
			ExcludedNames: cfg.Scan.ExcludedNames,
			ExcludedPaths: cfg.Scan.ExcludedPaths,
		}
	}

	accent := nonEmptyPtr(cfg.UI.Accent)
	codeTheme := nonEmptyPtr(cfg.UI.CodeTheme)
	if accent != nil || codeTheme != nil {
		out.UI = &persistedUISettings{
			Accent:    accent,
			CodeTheme: codeTheme,
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}
