package builtins

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"
	"golang.org/x/term"

	"github.com/goshell/gosh/core/config"
	"github.com/goshell/gosh/core/session"
)

// SimpleCommand handles flag parsing and help output for a builtin.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag
	// isn't added.
	ShowHelp *bool
	// NeverBail skips interacting with stdout/stderr on failure and
	// always runs the callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was successful call the callback.
func (s *SimpleCommand) Run(sess *session.Session, args []string, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(args, nil)
	if err != nil && !s.NeverBail {
		fmt.Fprintf(sess.Stderr, "error: %s\n\n", err)

		s.PrintHelp(sess.Stdout)
		return -1
	}

	if *s.ShowHelp {
		s.PrintHelp(sess.Stdout)
		return 0
	}

	return callback()
}

var colorBoldBlue = color.New(color.FgBlue, color.Bold)

// shouldColor decides whether output for the session gets ANSI colors,
// honoring the configured always/auto/never mode.
func shouldColor(sess *session.Session) bool {
	switch sess.Config.Color {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	default:
		if fd, ok := sess.Stdout.(*os.File); ok {
			return term.IsTerminal(int(fd.Fd()))
		}
		return false
	}
}

// colorize formats with the given color when the session allows it.
func colorize(sess *session.Session, c *color.Color, format string, a ...interface{}) string {
	if shouldColor(sess) {
		return c.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}

// totalFailure collapses a per-target failure count into the builtin exit
// convention: 0 when nothing failed, the count when some targets failed,
// -1 when every target failed.
func totalFailure(failed, targets int) int {
	switch {
	case failed == 0:
		return 0
	case failed == targets:
		return -1
	default:
		return failed
	}
}
