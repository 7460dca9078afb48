// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("[display]\ntheme = \"gruvbox\"\n")

	require.NoError(t, AtomicWriteFile(path, data, 0o644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, content)
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sched", "nested", "config.toml")

	require.NoError(t, AtomicWriteFile(path, []byte("x"), 0o600))
	assert.FileExists(t, path)
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.json")
	require.NoError(t, AtomicWriteFile(path, []byte("old content that is longer"), 0o644))
	require.NoError(t, AtomicWriteFile(path, []byte("new"), 0o644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestAtomicWriteFile_EmptyData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, AtomicWriteFile(path, nil, 0o644))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestAtomicWriteFile_LargeData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large")
	data := bytes.Repeat([]byte("2025-03-12,09:00,10:00,Lecture\n"), 50000)

	require.NoError(t, AtomicWriteFile(path, data, 0o644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, len(data), len(content))
}

func TestAtomicWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, AtomicWriteFile(filepath.Join(dir, "a"), []byte("a"), 0o644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Name())
}

func TestAtomicWriteFileWithDir_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	dir := filepath.Join(t.TempDir(), "private")
	path := filepath.Join(dir, "config.toml")

	require.NoError(t, AtomicWriteFileWithDir(path, []byte("x"), 0o600, 0o700))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir())
}

// =============================================================================
// WIDTH TESTS
// =============================================================================

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "schedule.csv", 20, "schedule.csv"},
		{"exact", "abc", 3, "abc"},
		{"ellipsis", "weekly-schedule.csv", 10, "weekly-..."},
		{"too narrow for ellipsis", "abcdef", 3, "abc"},
		{"zero", "abc", 0, ""},
		{"wide runes", "日本語のファイル", 9, "日本語..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateWidth(tt.input, tt.width))
		})
	}
}

func TestFillRight(t *testing.T) {
	assert.Equal(t, "ab   ", FillRight("ab", 5))
	assert.Equal(t, "日本 ", FillRight("日本", 5))
	assert.Equal(t, "ab...", FillRight("abcdefgh", 5))
}
