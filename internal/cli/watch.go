// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/jeranaias/sched/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <schedule.csv>",
		Short: "Redraw the agenda whenever the schedule or palette changes",
		Long: `Draw the agenda, then redraw it each time the CSV file, the configured
palette file or the --tags file is written. Press Ctrl-C to stop.`,
		Args: exactlyOneCSV,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWatch(cmd.Context(), args[0])
		},
	}
}

// runWatch draws once and then after every debounced change until ctx is
// cancelled. Render failures are shown and watching continues, so a file
// saved half-way through an edit does not end the session.
func (a *app) runWatch(ctx context.Context, path string) error {
	s, err := a.newSession(path)
	if err != nil {
		return err
	}

	draw := func() {
		if err := a.redraw(a.out, s); err != nil {
			DisplayError(a.errOut, err)
		}
	}
	draw()

	w, err := watch.New(s.watchedFiles(), s.cfg.DebounceInterval(), func(changed []string) {
		a.logf("RELOAD | files=%s", strings.Join(changed, ","))
		draw()
	}, a.logger)
	if err != nil {
		return &CommandError{Command: "watch", Reason: "cannot watch files", Err: err}
	}
	a.logf("WATCH_START | files=%s debounce=%s", strings.Join(w.Files(), ","), s.cfg.DebounceInterval())
	if err := w.Run(ctx); err != nil {
		return &CommandError{Command: "watch", Reason: "watcher stopped", Err: err}
	}
	return nil
}

// redraw clears the terminal and prints the agenda. The screen is only
// cleared when colors are on, so piped output stays a plain log of frames.
func (a *app) redraw(w io.Writer, s *session) error {
	output, err := s.render(s.widthFor(w), s.now())
	if err != nil {
		return err
	}
	if ColorsEnabled(w, a.flags.noColor) {
		termenv.NewOutput(w).ClearScreen()
	}
	return a.write(w, output)
}
