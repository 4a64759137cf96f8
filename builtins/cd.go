package builtins

import (
	"fmt"
	"os"

	"github.com/goshell/gosh/core/session"
)

// cd mutates the process-wide working directory; with no argument it moves
// to $HOME.
func cd(sess *session.Session, args []string) int {
	var target string

	switch len(args) {
	case 1:
		target = os.Getenv("HOME")
		if target == "" {
			fmt.Fprintln(sess.Stderr, "cd: HOME not set")
			return -1
		}
	case 2:
		target = args[1]
	default:
		fmt.Fprintf(sess.Stderr, "%s: too many arguments\n", args[0])
		return -1
	}

	if err := os.Chdir(target); err != nil {
		fmt.Fprintf(sess.Stderr, "cd: %v\n", err)
		return -1
	}

	if wd, err := os.Getwd(); err == nil {
		os.Setenv("PWD", wd)
	}
	return 0
}

var _ Func = cd

func init() {
	register("cd", "Change the working directory.", cd)
}
