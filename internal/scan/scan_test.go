package scan

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func assertScan(t *testing.T, root string, opts Options, want []string) {
	t.Helper()
	got, err := Dir(root, opts)
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("Dir = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Dir = %v, want %v", got, want)
		}
	}
}

func TestScansFilesInFolder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "apple", "bee", "cat")

	assertScan(t, dir, DefaultOptions(), []string{"apple", "bee", "cat"})
}

func TestScansNestedFolders(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "apple", "sub/bee", "sub/deeper/cat")

	assertScan(t, dir, DefaultOptions(), []string{"apple", "sub/bee", "sub/deeper/cat"})
}

func TestExcludesDataFolder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "apple", ".tagrepo/tags.db")

	assertScan(t, dir, DefaultOptions(), []string{"apple"})
}

func TestExcludesPathsAndNames(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "apple", "bee", "sub/apple", "sub/cat")

	opts := DefaultOptions()
	opts.ExcludedPaths = append(opts.ExcludedPaths, "bee")
	opts.ExcludedNames = append(opts.ExcludedNames, "apple")

	assertScan(t, dir, opts, []string{"sub/cat"})
}

func TestRejectsFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "apple")

	_, err := Dir(filepath.Join(dir, "apple"), DefaultOptions())
	if !errors.Is(err, ErrNotADirectory) {
		t.Fatalf("Dir: %v, want ErrNotADirectory", err)
	}
}
