// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Event is one schedule entry. Renderers treat it as read-only.
type Event struct {
	Date     time.Time // midnight UTC of the civil date
	Start    string    // HH:MM
	End      string    // HH:MM, may be empty
	Title    string
	Location string
	Tags     []string
}

// Times formats the event's time range, joining start and end with sep.
// Without an end time only the start is returned.
func (e Event) Times(sep string) string {
	if e.End == "" {
		return e.Start
	}
	return e.Start + sep + e.End
}

// DateOf returns midnight UTC of t's civil date in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseClock parses "HH:MM" into an offset from midnight. Hours must be
// 0-23 and minutes 0-59.
func ParseClock(s string) (time.Duration, bool) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, true
}

// SortEvents orders events by date, then start, end and title.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Title < b.Title
	})
}

// splitTags splits on ',' or ';' and drops empty entries.
func splitTags(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			tags = append(tags, f)
		}
	}
	return tags
}
