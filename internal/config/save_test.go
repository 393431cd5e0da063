package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSaveToRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := &Config{
		DefaultRepo: "samples",
		Repos: map[string]string{
			"samples": "/srv/samples",
			"photos":  "/srv/photos",
		},
		Scan: ScanConfig{
			ExcludedNames: []string{".DS_Store"},
		},
		UI: UIConfig{Accent: "#7AA2F7"},
	}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.DefaultRepo != "samples" {
		t.Errorf("default repo = %q, want %q", loaded.DefaultRepo, "samples")
	}
	if !reflect.DeepEqual(loaded.Repos, cfg.Repos) {
		t.Errorf("repos = %v, want %v", loaded.Repos, cfg.Repos)
	}
	if !reflect.DeepEqual(loaded.Scan.ExcludedNames, cfg.Scan.ExcludedNames) {
		t.Errorf("excluded names = %v, want %v", loaded.Scan.ExcludedNames, cfg.Scan.ExcludedNames)
	}
	if loaded.UI.Accent != "#7AA2F7" {
		t.Errorf("accent = %q, want %q", loaded.UI.Accent, "#7AA2F7")
	}
}

func TestSaveToOmitsEmptyFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := SaveTo(path, &Config{DefaultRepo: "x", Repos: map[string]string{"x": "/x"}}); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "[ui]") {
		t.Errorf("empty ui section persisted:\n%s", content)
	}
	if strings.Contains(content, "[scan]") {
		t.Errorf("empty scan section persisted:\n%s", content)
	}
}

func TestSaveToEmptyPath(t *testing.T) {
	if err := SaveTo("  ", &Config{}); err == nil {
		t.Error("expected error for blank path")
	}
}

func TestCreateDefaultAt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	created, err := CreateDefaultAt(path)
	if err != nil {
		t.Fatalf("failed to create default config: %v", err)
	}
	if created != path {
		t.Errorf("created path = %q, want %q", created, path)
	}

	// The template is all comments, so it must load as an empty config.
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
	if cfg.DefaultRepo != "" || len(cfg.Repos) != 0 {
		t.Errorf("default config is not empty: %+v", cfg)
	}

	// Creating again must not overwrite.
	if err := os.WriteFile(path, []byte(`default_repo = "kept"`), 0644); err != nil {
		t.Fatalf("failed to overwrite config: %v", err)
	}
	if _, err := CreateDefaultAt(path); err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	cfg, err = LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if cfg.DefaultRepo != "kept" {
		t.Error("existing config was overwritten")
	}
}
