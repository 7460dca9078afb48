// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jeranaias/sched/internal/ui/styles"
)

// =============================================================================
// PALETTE FILES
// =============================================================================

// LoadPalette reads a tag -> hex mapping. The file may be JSON or YAML;
// YAML is a superset of the JSON object syntax used for palettes. Keys
// and values are trimmed. An empty path yields an empty palette.
func LoadPalette(path string) (styles.Palette, error) {
	if path == "" {
		return styles.Palette{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading palette file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing palette file %s: %w", path, err)
	}

	p := make(styles.Palette, len(raw))
	for tag, hex := range raw {
		p[strings.TrimSpace(tag)] = strings.TrimSpace(hex)
	}
	return p, nil
}

// ResolvePalette builds the palette for a theme. Layers, lowest first:
// built-in theme defaults, the configured palette file, the [tags] table,
// then extra (typically the --tags file).
func (c *Config) ResolvePalette(id styles.ThemeID, extra styles.Palette) (styles.Palette, error) {
	file, err := LoadPalette(c.Palette.File)
	if err != nil {
		return nil, err
	}
	return styles.MergePalette(styles.DefaultPalette(id), file, styles.Palette(c.Tags), extra), nil
}
