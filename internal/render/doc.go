// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package render composes schedule events into terminal output.

# Cards

RenderCard draws one event as a bordered box:

	┌──────────────────────────────────────┐
	│ ██ ⏰ 09:00–10:30  Signals & Systems │
	│ ██ [NOW]  [Lecture] 📍 A1            │
	└──────────────────────────────────────┘

The stripe takes the color of the first tag found in the palette. The
border switches to the theme highlight while the event is current, and a
card for an event that already ended today is dimmed.

# Compact lines

RenderCompactLine draws one event per line for multi-day views:

	■  09:00-10:30  A1       Signals & Systems           [Lecture]

# Agenda

Agenda groups events by day under a dated header and a rule, using cards
or compact lines.
*/
package render
