// Package scan walks a repository folder and lists its files as relative
// slash-separated paths, the form every path takes in the database.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotADirectory indicates the scan root exists but is not a directory.
var ErrNotADirectory = errors.New("cannot scan path, it is not a directory")

// Options controls which entries a scan skips.
type Options struct {
	// ExcludedPaths are skipped entirely, relative to the scan root.
	ExcludedPaths []string
	// ExcludedNames are skipped in every subfolder.
	ExcludedNames []string
}

// DefaultOptions excludes the repository's own data folder.
func DefaultOptions() Options {
	return Options{
		ExcludedPaths: []string{".tagrepo"},
	}
}

// Dir walks root and returns relative slash-separated paths for every file
// under it. Unreadable subfolders are skipped rather than failing the scan.
func Dir(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, ErrNotADirectory
	}

	var items []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if excluded(rel, d.Name(), opts) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			items = append(items, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func excluded(rel, name string, opts Options) bool {
	for _, p := range opts.ExcludedPaths {
		if rel == p {
			return true
		}
	}
	for _, n := range opts.ExcludedNames {
		if name == n {
			return true
		}
	}
	return false
}
