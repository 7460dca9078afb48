// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package schedule loads schedule events from CSV and classifies them
// against a reference instant.
//
// Two CSV shapes are understood. A dated schedule has the columns
//
//	date,start,end,title,location,tags
//
// where date is YYYY-MM-DD. A weekly schedule replaces date with weekday
// (Mon..Sun, 0..6 with Monday as 0, or 7 for Sunday) and is expanded onto
// the Monday-Sunday week containing the reference date. Load picks the
// shape from the header.
//
// Start and end are HH:MM strings kept verbatim for display. Classify
// parses them when it needs a time window.
package schedule
