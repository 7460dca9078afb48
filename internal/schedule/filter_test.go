// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
	}{
		{"monday", time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)},
		{"sunday night", time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := WeekBounds(tt.ref)
			assert.Equal(t, date(2025, 3, 10), lo)
			assert.Equal(t, date(2025, 3, 16), hi)
		})
	}
}

func TestFilters(t *testing.T) {
	events := []Event{
		{Date: date(2025, 3, 9), Title: "previous sunday"},
		{Date: date(2025, 3, 10), Title: "monday"},
		{Date: date(2025, 3, 12), Title: "today a"},
		{Date: date(2025, 3, 12), Title: "today b"},
		{Date: date(2025, 3, 16), Title: "sunday"},
		{Date: date(2025, 3, 17), Title: "next monday"},
	}
	ref := time.Date(2025, 3, 12, 13, 0, 0, 0, time.UTC)

	titles := func(es []Event) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.Title)
		}
		return out
	}

	assert.Equal(t, []string{"today a", "today b"}, titles(FilterToday(events, ref)))
	assert.Equal(t, []string{"monday", "today a", "today b", "sunday"}, titles(FilterWeek(events, ref)))
	assert.Empty(t, FilterToday(nil, ref))
}

func TestDistinctDays(t *testing.T) {
	events := []Event{
		{Date: date(2025, 3, 12)},
		{Date: date(2025, 3, 10)},
		{Date: date(2025, 3, 12)},
	}
	assert.Equal(t, []time.Time{date(2025, 3, 10), date(2025, 3, 12)}, DistinctDays(events))
	assert.Empty(t, DistinctDays(nil))
}
