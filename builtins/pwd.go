package builtins

import (
	"fmt"
	"os"

	"github.com/goshell/gosh/core/session"
)

func pwd(sess *session.Session, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(sess.Stderr, "pwd: %v\n", err)
		return -1
	}

	fmt.Fprintln(sess.Stdout, wd)
	return 0
}

var _ Func = pwd

func init() {
	register("pwd", "Print the working directory.", pwd)
}
