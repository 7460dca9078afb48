// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/sched/internal/ui/styles"
)

func TestLoadPalette_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.json")
	writeFile(t, path, `{" Lab ": " #111111 ", "Club": "#222"}`)

	p, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, styles.Palette{"Lab": "#111111", "Club": "#222"}, p)
}

func TestLoadPalette_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.yaml")
	writeFile(t, path, "Lab: \"#111111\"\nClub: '#222222'\n")

	p, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, "#111111", p["Lab"])
	assert.Equal(t, "#222222", p["Club"])
}

func TestLoadPalette_EmptyPath(t *testing.T) {
	p, err := LoadPalette("")
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestLoadPalette_Errors(t *testing.T) {
	_, err := LoadPalette(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "- just\n- a list\n")
	_, err = LoadPalette(path)
	assert.Error(t, err)
}

func TestResolvePalette_Precedence(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tags.json")
	writeFile(t, file, `{"Lecture": "#000001", "Lab": "#000002", "Club": "#000003"}`)

	cfg := Default()
	cfg.Palette.File = file
	cfg.Tags = map[string]string{"Lab": "#000010", "Club": "#000011"}

	p, err := cfg.ResolvePalette(styles.ThemeDark, styles.Palette{"Club": "#000100"})
	require.NoError(t, err)

	assert.Equal(t, "#000001", p["Lecture"], "file beats theme defaults")
	assert.Equal(t, "#000010", p["Lab"], "[tags] beats file")
	assert.Equal(t, "#000100", p["Club"], "extra beats [tags]")
	assert.Equal(t, "#DC3545", p["Exam"], "theme defaults fill the rest")
}

func TestResolvePalette_GruvboxDefaults(t *testing.T) {
	p, err := Default().ResolvePalette(styles.ThemeGruvbox, nil)
	require.NoError(t, err)
	assert.Equal(t, "#83a598", p["Lecture"])
}
