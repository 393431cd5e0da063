// Package watcher monitors a repository root for file changes and keeps the
// database in sync automatically.
//
// Individual filesystem events are not applied one at a time. Editors and
// file managers produce noisy event streams (temp files, partial writes,
// rename pairs split across events), so the watcher just marks the tree
// dirty and runs a full rescan once events settle. Rename detection happens
// during the rescan, so tags follow moved files.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jamesWalker55/tag-repo/internal/diff"
	"github.com/jamesWalker55/tag-repo/internal/repo"
)

// Watcher monitors a repository for changes and automatically resyncs the
// database.
type Watcher struct {
	repo *repo.Repo

	// Configuration
	debounceDelay time.Duration
	ignoredNames  []string
	debug         bool

	// Internal state
	fsWatcher *fsnotify.Watcher
	mu        sync.Mutex
	dirtyAt   time.Time
	dirty     bool

	// Callbacks
	onSync func(d diff.Diff, err error)
}

// Config holds configuration options for the Watcher.
type Config struct {
	Repo          *repo.Repo
	DebounceDelay time.Duration // Default: 500ms
	IgnoredNames  []string      // Default: data dir and .git
	Debug         bool
	OnSync        func(d diff.Diff, err error) // Optional callback
}

// New creates a new Watcher with the given configuration.
func New(cfg Config) (*Watcher, error) {
	if cfg.Repo == nil {
		return nil, fmt.Errorf("repository is required")
	}

	debounce := cfg.DebounceDelay
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	ignored := cfg.IgnoredNames
	if ignored == nil {
		ignored = []string{repo.DataDirName, ".git"}
	}

	return &Watcher{
		repo:          cfg.Repo,
		debounceDelay: debounce,
		ignoredNames:  ignored,
		debug:         cfg.Debug,
		onSync:        cfg.OnSync,
	}, nil
}

// Start begins watching the repository for file changes.
// It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.fsWatcher.Close()

	if err := w.addWatchRecursive(w.repo.Root()); err != nil {
		return fmt.Errorf("failed to watch repository: %w", err)
	}

	w.logDebug("Watching repository: %s", w.repo.Root())

	// Start debounce processor
	go w.processDebounced(ctx)

	// Event loop
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logDebug("Watcher error: %v", err)
		}
	}
}

// handleEvent processes a single filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if w.shouldIgnore(path) {
		return
	}

	// Watch directories as they appear so files created inside them later
	// still produce events.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			w.addWatchRecursive(path)
		}
	}

	w.logDebug("Event: %s %s", event.Op, path)
	w.markDirty(time.Now())
}

// markDirty records that the tree changed. The debounce timer restarts on
// every event so a burst of changes produces one sync.
func (w *Watcher) markDirty(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dirty = true
	w.dirtyAt = now
}

// takeReady reports whether the tree is dirty and events have settled for the
// debounce delay. If so, the dirty flag is cleared.
func (w *Watcher) takeReady(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirty || now.Sub(w.dirtyAt) < w.debounceDelay {
		return false
	}
	w.dirty = false
	return true
}

// processDebounced runs a sync once pending changes settle.
func (w *Watcher) processDebounced(ctx context.Context) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if !w.takeReady(now) {
				continue
			}
			d, err := w.repo.SyncAll()
			if w.onSync != nil {
				w.onSync(d, err)
			}
			if err != nil {
				w.logDebug("Failed to sync: %v", err)
			} else {
				w.logDebug("Synced: %d created, %d deleted, %d renamed",
					len(d.Created), len(d.Deleted), len(d.Renamed))
			}
		}
	}
}

// addWatchRecursive adds a directory and all subdirectories to the watcher.
func (w *Watcher) addWatchRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if info.IsDir() {
			if path != root && w.shouldIgnore(path) {
				return filepath.SkipDir
			}
			if err := w.fsWatcher.Add(path); err != nil {
				w.logDebug("Failed to watch %s: %v", path, err)
			}
		}
		return nil
	})
}

// shouldIgnore returns true if the path is inside an ignored directory.
func (w *Watcher) shouldIgnore(path string) bool {
	rel, err := filepath.Rel(w.repo.Root(), path)
	if err != nil {
		return false
	}

	parts := strings.Split(rel, string(filepath.Separator))
	for _, part := range parts {
		for _, name := range w.ignoredNames {
			if part == name {
				return true
			}
		}
	}
	return false
}

// logDebug logs a debug message if debug mode is enabled.
func (w *Watcher) logDebug(format string, args ...interface{}) {
	if w.debug {
		fmt.Fprintf(os.Stderr, "[tagrepo-watcher] "+format+"\n", args...)
	}
}
