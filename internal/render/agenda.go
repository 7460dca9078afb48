// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/jeranaias/sched/internal/schedule"
	"github.com/jeranaias/sched/internal/ui/styles"
	"github.com/jeranaias/sched/internal/ui/text"
)

// NoEvents is printed for an empty agenda.
const NoEvents = "No events."

// HeaderLayout formats the date in day headers.
const HeaderLayout = "Monday, 2006-01-02"

// ruleMaxWidth caps the day separator.
const ruleMaxWidth = 60

// Agenda prints events grouped by day.
type Agenda struct {
	Out     io.Writer
	Options Options
	Compact bool
	Now     time.Time
	Logger  *log.Logger // nil disables logging
}

// UseCompact reports whether events should be shown as compact lines:
// when forced, or when they span more than one day.
func UseCompact(force bool, events []schedule.Event) bool {
	return force || len(schedule.DistinctDays(events)) > 1
}

// Render writes the agenda for events, which must be sorted by date.
func (a *Agenda) Render(events []schedule.Event) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(a.Out, NoEvents)
		return err
	}

	a.logf("LAYOUT | compact=%t width=%d theme=%s events=%d", a.Compact, a.Options.Width, a.Options.Theme.ID, len(events))

	var b strings.Builder
	th := a.Options.Theme
	rule := styles.Colorize(strings.Repeat("─", clamp(a.Options.Width-2, 0, ruleMaxWidth)), th.Rule)
	today := schedule.DateOf(a.Now)

	var current time.Time
	for i, e := range events {
		if i == 0 || !e.Date.Equal(current) {
			current = e.Date
			b.WriteString("\n")
			b.WriteString(styles.Colorize(text.Bold+"📅 "+current.Format(HeaderLayout)+text.Reset, th.Fg))
			b.WriteString("\n")
			b.WriteString(rule)
			b.WriteString("\n")
		}

		status := schedule.Classify(e, a.Now)
		dimmed := status == schedule.StatusPast && e.Date.Equal(today)

		if a.Compact {
			line, err := RenderCompactLine(e, status, a.Options)
			if err != nil {
				a.logf("RENDER_ERROR | title=%q err=%v", e.Title, err)
				return err
			}
			if dimmed {
				line = text.Dim + line + text.Reset
			}
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
			continue
		}

		card, err := RenderCard(e, status, dimmed, a.Options)
		if err != nil {
			a.logf("RENDER_ERROR | title=%q err=%v", e.Title, err)
			return err
		}
		b.WriteString(card)
		b.WriteString("\n\n")
	}

	if a.Compact {
		b.WriteString("\n\n")
	}

	_, err := io.WriteString(a.Out, b.String())
	return err
}

// RenderString renders events into a string instead of a.Out.
func (a *Agenda) RenderString(events []schedule.Event) (string, error) {
	var buf bytes.Buffer
	cp := *a
	cp.Out = &buf
	if err := cp.Render(events); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (a *Agenda) logf(format string, args ...any) {
	if a.Logger != nil {
		a.Logger.Printf(format, args...)
	}
}
