// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the sched commands.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// Plain-text Width:
//   - TruncateWidth: Column-aware truncation with ellipsis
//   - FillRight: Column-aware right padding
//
// # Usage
//
//	// Write the config file without ever leaving it half-written
//	err := util.AtomicWriteFile(path, data, 0600)
//
//	// Fit a file name into a status bar
//	name := util.TruncateWidth(path, 30)
package util
