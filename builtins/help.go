package builtins

import (
	"fmt"
	"text/tabwriter"

	"github.com/goshell/gosh/core/session"
)

func help(sess *session.Session, args []string) int {
	fmt.Fprintln(sess.Stdout, "gosh builtin commands:")

	tw := tabwriter.NewWriter(sess.Stdout, 8, 8, 4, ' ', 0)
	for _, b := range All() {
		fmt.Fprintf(tw, "  %s\t%s\n", b.Name, b.Short)
	}
	tw.Flush()

	fmt.Fprintln(sess.Stdout)
	fmt.Fprintln(sess.Stdout, "Anything else is run as an external program.")
	fmt.Fprintln(sess.Stdout, "Use !N or !prefix to repeat a command from history.")
	return 0
}

var _ Func = help

func init() {
	register("help", "Show this help.", help)
}
