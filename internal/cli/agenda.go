// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"io"
	"io/fs"
	"time"

	"github.com/jeranaias/sched/internal/config"
	"github.com/jeranaias/sched/internal/render"
	"github.com/jeranaias/sched/internal/schedule"
	"github.com/jeranaias/sched/internal/ui/styles"
	"github.com/jeranaias/sched/internal/ui/text"
)

// NowLayout is the format of the --now flag.
const NowLayout = "2006-01-02T15:04"

// session is the resolved configuration for drawing one schedule file.
// Precedence: flags > env > config file > defaults.
type session struct {
	app     *app
	path    string
	cfg     *config.Config
	theme   styles.Theme
	loc     *time.Location
	fixed   time.Time // zero = live clock
	compact bool
	width   int // 0 = detect
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// loadConfig reads the config file named by --config, or the default one.
func (a *app) loadConfig() (*config.Config, error) {
	if a.flags.configPath != "" {
		cfg, err := config.LoadFromPath(a.flags.configPath)
		if err != nil {
			return nil, &ConfigError{Path: a.flags.configPath, Err: err}
		}
		a.logf("CONFIG_LOADED | path=%s", a.flags.configPath)
		return cfg, nil
	}

	cfg, err := config.Load()
	if cfg == nil {
		return nil, &ConfigError{Err: err}
	}
	if err != nil {
		// A broken file is reported but the defaults still work.
		a.warn("%v (using defaults)", err)
	}
	path, _ := config.ConfigPathTOML()
	a.logf("CONFIG_LOADED | path=%s theme=%s tz=%q", path, cfg.Display.Theme, cfg.Time.Timezone)
	return cfg, nil
}

// newSession resolves config, flags and environment for path.
func (a *app) newSession(path string) (*session, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	if a.flags.theme != "" {
		cfg.Display.Theme = a.flags.theme
	}
	if a.flags.tz != "" {
		cfg.Time.Timezone = a.flags.tz
	}
	if a.flags.width < 0 {
		return nil, NewValidationError("--width", "", "must not be negative")
	}
	if a.flags.width > 0 {
		cfg.Display.Width = a.flags.width
	}

	id, ok := cfg.ThemeID()
	if !ok {
		a.logf("THEME_FALLBACK | requested=%q using=%s", cfg.Display.Theme, id)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, NewValidationErrorWithExample("--tz", cfg.Time.Timezone, "unknown timezone", "--tz Europe/Berlin")
	}

	s := &session{
		app:     a,
		path:    path,
		cfg:     cfg,
		theme:   id.Theme(),
		loc:     loc,
		compact: a.flags.compact || cfg.Display.Compact,
		width:   cfg.Display.Width,
	}

	if a.flags.now != "" {
		fixed, err := time.ParseInLocation(NowLayout, a.flags.now, loc)
		if err != nil {
			return nil, NewValidationErrorWithExample("--now", a.flags.now, "expected YYYY-MM-DDTHH:MM", "--now 2025-03-12T09:30")
		}
		s.fixed = fixed
	}
	return s, nil
}

// now is the instant statuses are classified against.
func (s *session) now() time.Time {
	if !s.fixed.IsZero() {
		return s.fixed
	}
	return time.Now().In(s.loc)
}

// widthFor returns the configured width, or the width of the terminal
// behind w.
func (s *session) widthFor(w io.Writer) int {
	if s.width > 0 {
		return s.width
	}
	return TerminalWidth(w, render.DefaultWidth)
}

// watchedFiles lists every input that affects the output.
func (s *session) watchedFiles() []string {
	return []string{s.path, s.cfg.Palette.File, s.app.flags.tagsPath}
}

// =============================================================================
// RENDERING
// =============================================================================

// palette merges the theme defaults, the config palette and the --tags file.
// Entries are parsed only when an event uses them.
func (s *session) palette() (styles.Palette, error) {
	extra, err := config.LoadPalette(s.app.flags.tagsPath)
	if err != nil {
		return nil, notFoundOr(err, "palette", s.app.flags.tagsPath)
	}
	id, _ := s.cfg.ThemeID()
	p, err := s.cfg.ResolvePalette(id, extra)
	if err != nil {
		return nil, notFoundOr(err, "palette", s.cfg.Palette.File)
	}
	return p, nil
}

// events loads the schedule and applies the date filters. Weekly
// schedules are always limited to the week of now.
func (s *session) events(now time.Time) ([]schedule.Event, error) {
	loaded, err := schedule.Load(s.path, now)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Resource: "schedule", ID: s.path}
		}
		return nil, err
	}
	s.app.logf("CSV_LOADED | path=%s events=%d weekly=%t", s.path, len(loaded.Events), loaded.Weekly)

	events := loaded.Events
	if loaded.Weekly || s.app.flags.thisWeek {
		events = schedule.FilterWeek(events, now)
	}
	if s.app.flags.today {
		events = schedule.FilterToday(events, now)
	}
	return events, nil
}

// render draws the agenda at width columns for instant now.
func (s *session) render(width int, now time.Time) (string, error) {
	events, err := s.events(now)
	if err != nil {
		return "", err
	}
	p, err := s.palette()
	if err != nil {
		return "", err
	}

	agenda := &render.Agenda{
		Options: render.Options{
			Width:   width,
			Theme:   s.theme,
			Palette: p,
		},
		Compact: render.UseCompact(s.compact, events),
		Now:     now,
		Logger:  s.app.logger,
	}
	return agenda.RenderString(events)
}

// write sends output to w, without control sequences when colors are off.
func (a *app) write(w io.Writer, output string) error {
	if !ColorsEnabled(w, a.flags.noColor) {
		output = text.Strip(output)
	}
	_, err := io.WriteString(w, output)
	return err
}

// =============================================================================
// DEFAULT COMMAND
// =============================================================================

// runShow prints the agenda once.
func (a *app) runShow(path string) error {
	s, err := a.newSession(path)
	if err != nil {
		return err
	}
	output, err := s.render(s.widthFor(a.out), s.now())
	if err != nil {
		return err
	}
	return a.write(a.out, output)
}
