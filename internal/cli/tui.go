// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/sched/internal/ui/pager"
	"github.com/jeranaias/sched/internal/watch"
)

func newTUICmd(a *app) *cobra.Command {
	var noWatch bool

	cmd := &cobra.Command{
		Use:   "tui <schedule.csv>",
		Short: "Show the agenda in a scrollable full-screen view",
		Long: `Open the agenda in a full-screen pager. Statuses are re-classified every
tui.refresh_secs seconds, the layout follows terminal resizes, and the view
reloads when the schedule or palette files change.

Keys: arrows/pgup/pgdn scroll, g/G top/bottom, r reload, q quit.`,
		Args: exactlyOneCSV,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context(), args[0], !noWatch)
		},
	}
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload on file changes")
	return cmd
}

// newPager builds the pager model for a session.
func (a *app) newPager(s *session) pager.Model {
	refresh := s.cfg.RefreshInterval()
	if !s.fixed.IsZero() {
		// A pinned clock never moves statuses along.
		refresh = 0
	}
	return pager.New(filepath.Base(s.path), s.render, s.theme, refresh).
		WithClock(s.now)
}

func (a *app) runTUI(ctx context.Context, path string, watchFiles bool) error {
	if !IsTerminal(a.out) || !IsTTY() {
		return &CommandError{Command: "tui", Reason: "stdin and stdout must be a terminal"}
	}

	s, err := a.newSession(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := pager.NewProgram(ctx, a.newPager(s))

	if watchFiles {
		w, err := watch.New(s.watchedFiles(), s.cfg.DebounceInterval(), func([]string) {
			program.Send(pager.ReloadMsg{})
		}, a.logger)
		if err != nil {
			return &CommandError{Command: "tui", Reason: "cannot watch files", Err: err}
		}
		a.logf("WATCH_START | files=%s", strings.Join(w.Files(), ","))
		go func() {
			if err := w.Run(ctx); err != nil {
				a.logf("WATCH_ERROR | err=%v", err)
			}
		}()
	}

	start := time.Now()
	final, err := program.Run()
	a.logf("TUI_EXIT | duration=%s", time.Since(start).Round(time.Second))
	if err != nil && ctx.Err() == nil {
		return &CommandError{Command: "tui", Reason: "pager failed", Err: err}
	}
	if m, ok := final.(pager.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
