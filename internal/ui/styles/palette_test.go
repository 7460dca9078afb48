// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	dark := DefaultPalette(ThemeDark)
	assert.Len(t, dark, 10)
	assert.Equal(t, "#0078D7", dark["Lecture"])
	assert.Equal(t, "#FFC107", dark["Advising"])

	gruv := DefaultPalette(ThemeGruvbox)
	assert.Len(t, gruv, 9)
	assert.Equal(t, "#83a598", gruv["Lecture"])
	_, ok := gruv["Advising"]
	assert.False(t, ok)

	require.NoError(t, dark.Validate())
	require.NoError(t, gruv.Validate())
}

func TestDefaultPalette_IsACopy(t *testing.T) {
	p := DefaultPalette(ThemeDark)
	p["Lecture"] = "#000000"
	assert.Equal(t, "#0078D7", DefaultPalette(ThemeDark)["Lecture"])
}

func TestMergePalette_LaterWins(t *testing.T) {
	base := Palette{"Lab": "#111111", "Exam": "#222222"}
	file := Palette{"Lab": "#333333", "Club": "#444444"}
	flags := Palette{"Club": "#555555"}

	got := MergePalette(base, file, flags)

	assert.Equal(t, Palette{"Lab": "#333333", "Exam": "#222222", "Club": "#555555"}, got)
	assert.Equal(t, "#111111", base["Lab"], "inputs must not change")
}

func TestTagColor_FirstMatchInListOrder(t *testing.T) {
	p := Palette{"Lab": "#E83E8C", "CS": "#20C997"}

	hex, ok := p.TagColor([]string{"Elective", "CS", "Lab"})
	require.True(t, ok)
	assert.Equal(t, "#20C997", hex)

	_, ok = p.TagColor([]string{"lab", "cs"})
	assert.False(t, ok, "matching is case-sensitive")

	_, ok = p.TagColor(nil)
	assert.False(t, ok)
}

func TestResolveTagColor(t *testing.T) {
	th := ThemeDark.Theme()
	p := Palette{"Lab": "#E83E8C", "Broken": "purple"}

	c, err := ResolveTagColor([]string{"Lab"}, p, th)
	require.NoError(t, err)
	assert.Equal(t, "#E83E8C", c.Hex())

	c, err = ResolveTagColor([]string{"Unknown"}, p, th)
	require.NoError(t, err)
	assert.Equal(t, th.StripeFallback, c)

	_, err = ResolveTagColor([]string{"Broken", "Lab"}, p, th)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidColor))
}

func TestPaletteValidate(t *testing.T) {
	err := Palette{"Good": "#fff", "Bad": "#12"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Bad"`)
	assert.True(t, errors.Is(err, ErrInvalidColor))
}

func TestPaletteTags_Sorted(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, Palette{"C": "", "A": "", "B": ""}.Tags())
}
