package builtins

import (
	"fmt"
	"os"

	"github.com/goshell/gosh/core/session"
)

func mkdir(sess *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "mkdir [OPTION...] DIRECTORY...",
		Short: "Create directories if they don't exist.",
	}

	makeParents := cmd.Flags().BoolLong("parents", 'p', "make parents if needed")
	verbose := cmd.Flags().BoolLong("verbose", 'v', "print a line for every created directory")

	return cmd.Run(sess, args, func() int {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			fmt.Fprintln(sess.Stderr, "mkdir: missing operand")
			return -1
		}

		var op func(path string, perm os.FileMode) error
		if *makeParents {
			op = sess.FS.MkdirAll
		} else {
			op = sess.FS.Mkdir
		}

		failed := 0
		for _, dir := range directories {
			err := op(dir, 0777)
			switch {
			case err != nil:
				fmt.Fprintf(sess.Stderr, "mkdir: cannot create directory %q: %s\n", dir, err)
				failed++

			case *verbose:
				fmt.Fprintf(sess.Stdout, "mkdir: created directory %q\n", dir)
			}
		}

		return totalFailure(failed, len(directories))
	})
}

var _ Func = mkdir

func init() {
	register("mkdir", "Create directories.", mkdir)
}
