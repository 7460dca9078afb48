// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch re-runs a callback when schedule or palette files change.
package watch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// WATCHER
// =============================================================================

// ChangeFunc receives the watched files that changed since the last call,
// sorted.
type ChangeFunc func(paths []string)

// Watcher debounces fsnotify events for a fixed set of files.
//
// Parent directories are watched rather than the files themselves, so
// editors that save by writing a temp file and renaming it over the
// original are still seen.
type Watcher struct {
	files    map[string]bool // absolute paths
	debounce time.Duration
	onChange ChangeFunc
	logger   *log.Logger

	mu      sync.Mutex
	pending map[string]time.Time // path -> last change
}

// New creates a Watcher for files. Empty paths are ignored.
func New(files []string, debounce time.Duration, onChange ChangeFunc, logger *log.Logger) (*Watcher, error) {
	w := &Watcher{
		files:    make(map[string]bool),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		pending:  make(map[string]time.Time),
	}
	for _, f := range files {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		w.files[abs] = true
	}
	if len(w.files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	return w, nil
}

// Files returns the watched paths, sorted.
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	tick := w.debounce / 2
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event, time.Now())

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logf("WATCH_ERROR | err=%v", err)

		case now := <-ticker.C:
			if due := w.due(now); len(due) > 0 {
				w.onChange(due)
			}
		}
	}
}

// handle records a change to one of the watched files.
func (w *Watcher) handle(event fsnotify.Event, now time.Time) {
	if event.Op == fsnotify.Chmod {
		return
	}
	path, err := filepath.Abs(event.Name)
	if err != nil || !w.files[path] {
		return
	}

	w.logf("WATCH_EVENT | file=%s op=%s", path, event.Op)

	w.mu.Lock()
	w.pending[path] = now
	w.mu.Unlock()
}

// due removes and returns the pending paths that have been quiet for at
// least the debounce interval.
func (w *Watcher) due(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	for path, changed := range w.pending {
		if now.Sub(changed) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	sort.Strings(ready)
	return ready
}

func (w *Watcher) logf(format string, args ...any) {
	if w.logger != nil {
		w.logger.Printf(format, args...)
	}
}
