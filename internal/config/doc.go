// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for sched.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - DisplayConfig: Theme, layout and width
//   - TimeConfig: Timezone for "now"
//   - PaletteConfig: External tag color file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command-line flags (applied by the cli package)
//   - Environment variables (SCHED_*)
//   - ~/.sched/config.toml
//   - ~/.sched/config.json
//   - Built-in defaults
//
// # Palettes
//
// Tag colors are layered, later layers winning:
//
//	theme defaults < [palette] file < [tags] table < --tags file
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Printf("CONFIG_ERROR | err=%v", err)
//	}
//	id, _ := cfg.ThemeID()
//	pal, err := cfg.ResolvePalette(id, nil)
package config
