package builtins

import (
	"fmt"
	"strconv"

	"github.com/goshell/gosh/core/session"
)

// exit sets the session's termination flag; the owning loop stops after
// the current line finishes.
func exitBuiltin(sess *session.Session, args []string) int {
	code := 0

	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(sess.Stderr, "exit: %s: numeric argument required\n", args[1])
			sess.RequestExit(2)
			return 2
		}
		code = parsed
	}

	sess.RequestExit(code)
	return code
}

var _ Func = exitBuiltin

func init() {
	register("exit", "Exit the shell.", exitBuiltin)
}
