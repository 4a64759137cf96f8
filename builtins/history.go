package builtins

import (
	"fmt"

	"github.com/goshell/gosh/core/session"
)

func historyBuiltin(sess *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "history [-c]",
		Short: "Show or clear the command history.",
	}

	clearAll := cmd.Flags().BoolLong("clear", 'c', "clear the history list")

	return cmd.Run(sess, args, func() int {
		if *clearAll {
			sess.History.Clear()
			return 0
		}

		for i, e := range sess.History.Entries() {
			fmt.Fprintf(sess.Stdout, "%5d  %s  %s\n",
				i+1, e.Timestamp.Format("2006-01-02 15:04:05"), e.Command)
		}
		return 0
	})
}

var _ Func = historyBuiltin

func init() {
	register("history", "Show or clear the command history.", historyBuiltin)
}
