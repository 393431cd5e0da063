package watcher

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jamesWalker55/tag-repo/internal/repo"
)

func testWatcher(t *testing.T) *Watcher {
	t.Helper()
	r, err := repo.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open repository: %v", err)
	}
	t.Cleanup(func() { r.Close() })

	w, err := New(Config{Repo: r, DebounceDelay: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	return w
}

func TestShouldIgnore(t *testing.T) {
	w := testWatcher(t)
	root := w.repo.Root()

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(root, "a.txt"), false},
		{filepath.Join(root, "sub", "b.txt"), false},
		{filepath.Join(root, ".tagrepo"), true},
		{filepath.Join(root, ".tagrepo", "tags.db"), true},
		{filepath.Join(root, ".git", "HEAD"), true},
		{filepath.Join(root, "sub", ".git", "config"), true},
	}
	for _, test := range tests {
		if got := w.shouldIgnore(test.path); got != test.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", test.path, got, test.want)
		}
	}
}

func TestDebounce(t *testing.T) {
	w := testWatcher(t)
	start := time.Now()

	// nothing pending
	if w.takeReady(start) {
		t.Error("ready with no pending changes")
	}

	w.markDirty(start)
	if w.takeReady(start.Add(50 * time.Millisecond)) {
		t.Error("ready before the debounce delay elapsed")
	}

	// a new event restarts the delay
	w.markDirty(start.Add(80 * time.Millisecond))
	if w.takeReady(start.Add(120 * time.Millisecond)) {
		t.Error("ready while events were still arriving")
	}

	if !w.takeReady(start.Add(200 * time.Millisecond)) {
		t.Error("not ready after events settled")
	}
	// the dirty flag is consumed
	if w.takeReady(start.Add(300 * time.Millisecond)) {
		t.Error("ready twice for one batch of changes")
	}
}
