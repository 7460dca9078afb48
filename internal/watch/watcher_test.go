// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresFiles(t *testing.T) {
	_, err := New([]string{"", ""}, time.Millisecond, func([]string) {}, nil)
	assert.Error(t, err)
}

func TestNew_ResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "schedule.csv")
	tags := filepath.Join(dir, "tags.json")

	w, err := New([]string{tags, csv, ""}, time.Millisecond, func([]string) {}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{csv, tags}, w.Files())
}

func TestHandleAndDue_Debounce(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "schedule.csv")
	var logs bytes.Buffer

	w, err := New([]string{csv}, 200*time.Millisecond, func([]string) {}, log.New(&logs, "", 0))
	require.NoError(t, err)

	t0 := time.Now()
	w.handle(fsnotify.Event{Name: csv, Op: fsnotify.Write}, t0)
	w.handle(fsnotify.Event{Name: filepath.Join(dir, "other.csv"), Op: fsnotify.Write}, t0)
	w.handle(fsnotify.Event{Name: csv, Op: fsnotify.Chmod}, t0)

	assert.Empty(t, w.due(t0.Add(100*time.Millisecond)), "still inside the debounce window")

	// A second write restarts the window.
	w.handle(fsnotify.Event{Name: csv, Op: fsnotify.Write}, t0.Add(150*time.Millisecond))
	assert.Empty(t, w.due(t0.Add(300*time.Millisecond)))

	assert.Equal(t, []string{csv}, w.due(t0.Add(350*time.Millisecond)))
	assert.Empty(t, w.due(t0.Add(time.Second)), "fired once")

	assert.Contains(t, logs.String(), "WATCH_EVENT | file="+csv)
	assert.NotContains(t, logs.String(), "other.csv")
}

func TestHandle_RenameCounts(t *testing.T) {
	csv := filepath.Join(t.TempDir(), "schedule.csv")
	w, err := New([]string{csv}, 0, func([]string) {}, nil)
	require.NoError(t, err)

	now := time.Now()
	w.handle(fsnotify.Event{Name: csv, Op: fsnotify.Create}, now)
	assert.Equal(t, []string{csv}, w.due(now))
}

func TestRun_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "schedule.csv")
	require.NoError(t, os.WriteFile(csv, []byte("date,start,title\n"), 0o600))

	changed := make(chan []string, 4)
	w, err := New([]string{csv}, 20*time.Millisecond, func(p []string) { changed <- p }, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(csv, []byte("date,start,title\n2025-03-12,09:00,x\n"), 0o600))

	select {
	case paths := <-changed:
		assert.Equal(t, []string{csv}, paths)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone", "schedule.csv")
	w, err := New([]string{missing}, time.Millisecond, func([]string) {}, nil)
	require.NoError(t, err)

	assert.Error(t, w.Run(context.Background()))
}
