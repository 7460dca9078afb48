// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package schedule

import "time"

// Status relates an event to a reference instant.
type Status int

const (
	StatusFuture Status = iota
	StatusCurrent
	StatusPast
)

// String returns "future", "current" or "past".
func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusPast:
		return "past"
	default:
		return "future"
	}
}

// DefaultDuration is assumed for events without an end time.
const DefaultDuration = time.Hour

// Window returns the event's start and end as offsets from midnight.
// An empty or unparseable start is midnight. A missing or unparseable end
// is start plus DefaultDuration, which may run past 24h.
func (e Event) Window() (start, end time.Duration) {
	start, _ = ParseClock(e.Start)
	end, ok := ParseClock(e.End)
	if !ok {
		end = start + DefaultDuration
	}
	return start, end
}

// Classify reports whether e is past, current or future at now. Dates are
// compared as civil dates in now's location. On the event's day both ends
// of the window are inclusive.
func Classify(e Event, now time.Time) Status {
	today := DateOf(now)
	day := DateOf(e.Date)
	if !day.Equal(today) {
		if day.After(today) {
			return StatusFuture
		}
		return StatusPast
	}

	start, end := e.Window()
	offset := clockOffset(now)

	switch {
	case offset >= start && offset <= end:
		return StatusCurrent
	case offset > end:
		return StatusPast
	default:
		return StatusFuture
	}
}

// clockOffset is the wall-clock time of t as an offset from midnight.
func clockOffset(t time.Time) time.Duration {
	h, m, sec := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second + time.Duration(t.Nanosecond())
}
