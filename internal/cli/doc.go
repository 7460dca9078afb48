// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the sched command line.
//
// # Commands
//
//   - sched <csv>: print the agenda once
//   - watch <csv>: redraw whenever the schedule or palette changes
//   - tui <csv>: scrollable full-screen agenda with live statuses
//   - config path|show|init: inspect or create ~/.sched/config.toml
//   - version: build information
//
// # Settings
//
// Every setting resolves as flags > SCHED_* environment > config file >
// defaults. Tag colors layer the theme palette, the palette file, the
// config [tags] table and the --tags file, later layers winning.
//
// # Output
//
// Agendas are written with 24-bit color sequences. When stdout is not a
// terminal, NO_COLOR is set or --no-color is given, the same layout is
// written with every control sequence stripped. FORCE_COLOR keeps colors
// on a pipe.
//
// # Exit Codes
//
//	0  success
//	1  unexpected error
//	2  bad flags or arguments (including --now and --tz)
//	3  configuration file error
//	4  malformed schedule or palette color
//	7  schedule or palette file not found
package cli
