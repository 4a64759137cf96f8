package builtins

import (
	"fmt"

	"github.com/goshell/gosh/core/session"
)

func clear(sess *session.Session, args []string) int {
	// Assumes VT100 compatibility.
	fmt.Fprint(sess.Stdout, "\033[2J\033[H")
	return 0
}

var _ Func = clear

func init() {
	register("clear", "Clear the terminal screen.", clear)
}
