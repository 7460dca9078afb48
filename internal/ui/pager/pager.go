// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pager shows a rendered agenda in a scrollable full-screen view.
package pager

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/jeranaias/sched/internal/ui/styles"
	"github.com/jeranaias/sched/internal/util"
)

// =============================================================================
// MESSAGES
// =============================================================================

// RenderFunc produces the agenda for a terminal width at instant now.
type RenderFunc func(width int, now time.Time) (string, error)

// ReloadMsg asks the pager to render again, e.g. after the file changed.
type ReloadMsg struct{}

// tickMsg drives the periodic refresh that moves events from future to
// current to past.
type tickMsg time.Time

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model of the agenda pager.
type Model struct {
	viewport viewport.Model
	render   RenderFunc
	theme    styles.Theme
	title    string
	refresh  time.Duration
	clock    func() time.Time

	width    int
	height   int
	ready    bool
	err      error
	rendered time.Time
}

// New creates a pager. A refresh of zero disables periodic re-rendering.
func New(title string, render RenderFunc, theme styles.Theme, refresh time.Duration) Model {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		render:   render,
		theme:    theme,
		title:    title,
		refresh:  refresh,
		clock:    time.Now,
	}
}

// WithClock replaces the time source.
func (m Model) WithClock(clock func() time.Time) Model {
	m.clock = clock
	return m
}

// Init starts the refresh timer.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	if m.refresh <= 0 {
		return nil
	}
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles resize, refresh and key messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-1) // status bar
		m.ready = true
		m.rerender()
		return m, nil

	case tickMsg:
		m.rerender()
		return m, m.tick()

	case ReloadMsg:
		m.rerender()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.rerender()
			return m, nil
		case "home", "g":
			m.viewport.GotoTop()
			return m, nil
		case "end", "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// rerender lays the agenda out again for the current size and time. The
// scroll position is kept.
func (m *Model) rerender() {
	if !m.ready {
		return
	}
	now := m.clock()
	content, err := m.render(m.width, now)
	m.err = err
	m.rendered = now
	if err != nil {
		content = wrapText("error: "+err.Error(), m.width)
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(strings.TrimRight(content, "\n"))
	m.viewport.SetYOffset(offset)
}

// wrapText breaks s at spaces to fit width columns. Words longer than a
// line, such as file paths, are split.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wrap.String(wordwrap.String(s, width), width)
}

// Err returns the error of the last render, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the viewport and the status bar.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View() + "\n" + m.statusBar()
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) statusBar() string {
	right := fmt.Sprintf(" %s  %3.0f%%  r reload  q quit ", m.rendered.Format("15:04"), m.viewport.ScrollPercent()*100)
	if m.err != nil {
		right = " render failed " + right
	}
	right = truncate.String(right, uint(max(0, m.width-1)))

	room := m.width - runewidth.StringWidth(right) - 1
	left := " " + util.FillRight(m.title, max(0, room))

	bar := lipgloss.NewStyle().
		Background(m.theme.Lipgloss(styles.RoleBorder)).
		Foreground(m.theme.Lipgloss(styles.RoleFg))
	accent := bar.Foreground(m.theme.Lipgloss(styles.RoleHighlight)).Bold(true)

	return accent.Render(left) + bar.Render(right)
}

// =============================================================================
// PROGRAM
// =============================================================================

// NewProgram wraps m in a full-screen bubbletea program that stops when
// ctx is cancelled.
func NewProgram(ctx context.Context, m Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
}
