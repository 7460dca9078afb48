// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// flags holds the values of the global flags.
type flags struct {
	configPath string
	tagsPath   string
	today      bool
	thisWeek   bool
	theme      string
	compact    bool
	tz         string
	now        string
	width      int
	verbose    bool
	noColor    bool
}

// app is the state shared by every command of one invocation.
type app struct {
	flags  flags
	out    io.Writer
	errOut io.Writer
	logger *log.Logger
}

// =============================================================================
// ENTRY POINTS
// =============================================================================

// Execute runs sched with the process arguments and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command line args against the given streams.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return HandleError(stderr, root.ExecuteContext(ctx))
}

// NewRootCmd builds the sched command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sched [flags] <schedule.csv>",
		Short: "Render a CSV schedule as a colorized terminal agenda",
		Long: `sched draws schedule events from a CSV file as bordered cards for a
single day, or compact one-line summaries when several days are shown.

Dated CSV columns:  date,start,end,title,location,tags
Weekly CSV columns: weekday,start,end,title,location,tags

Examples:
  sched week.csv --today               # today's events as cards
  sched week.csv --this-week --compact # Monday..Sunday, one line each
  sched tui week.csv                   # scrollable, live-updating view
  sched watch week.csv                 # redraw when the file changes`,
		Args:          exactlyOneCSV,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.init(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(args[0])
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "config file (default ~/.sched/config.toml)")
	pf.StringVar(&a.flags.tagsPath, "tags", "", "tag color file (JSON or YAML tag -> hex)")
	pf.BoolVar(&a.flags.today, "today", false, "show only today's events")
	pf.BoolVar(&a.flags.thisWeek, "this-week", false, "show only this week's events (Monday..Sunday)")
	pf.StringVar(&a.flags.theme, "theme", "", "color theme: dark or gruvbox")
	pf.BoolVar(&a.flags.compact, "compact", false, "force one line per event")
	pf.StringVar(&a.flags.tz, "tz", "", "IANA timezone for the current time (default local)")
	pf.StringVar(&a.flags.now, "now", "", "pretend the current time is YYYY-MM-DDTHH:MM")
	pf.IntVar(&a.flags.width, "width", 0, "terminal width in columns (default detect)")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log diagnostics to stderr")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return NewValidationError("flags", "", err.Error())
	})

	root.AddCommand(
		newWatchCmd(a),
		newTUICmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return root
}

// init captures the streams and sets up logging and message styles.
func (a *app) init(cmd *cobra.Command) {
	a.out = cmd.OutOrStdout()
	a.errOut = cmd.ErrOrStderr()

	logOut := io.Discard
	if a.flags.verbose {
		logOut = a.errOut
	}
	a.logger = log.New(logOut, "", log.LstdFlags)

	configureStyles(ColorProfile(a.errOut, a.flags.noColor))
}

func (a *app) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}

// warn prints a non-fatal problem to stderr.
func (a *app) warn(format string, args ...any) {
	fmt.Fprintf(a.errOut, "%s %s\n", WarningStyle.Render("warning:"), fmt.Sprintf(format, args...))
}

// =============================================================================
// ARGUMENT VALIDATION
// =============================================================================

// exactlyOneCSV requires a single schedule path.
func exactlyOneCSV(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return nil
	}
	reason := "expected exactly one CSV file"
	if len(args) == 0 {
		reason = "missing CSV file"
	}
	return NewValidationErrorWithExample("arguments", strings.Join(args, " "), reason,
		cmd.CommandPath()+" schedule.csv")
}
