package builtins

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/goshell/gosh/core/session"
)

func rm(sess *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "rm [OPTION...] FILE...",
		Short: "Remove files or directories.",
	}

	recursive := cmd.Flags().BoolLong("recursive", 'r', "remove directories and their contents recursively")
	force := cmd.Flags().BoolLong("force", 'f', "ignore missing files and arguments, never prompt")

	return cmd.Run(sess, args, func() int {
		files := cmd.Flags().Args()
		if len(files) == 0 {
			fmt.Fprintln(sess.Stderr, "rm: missing operand")
			return -1
		}

		failed := 0
		for _, file := range files {
			stat, statErr := sess.FS.Stat(file)
			switch {
			case errors.Is(statErr, fs.ErrNotExist):
				if !*force {
					fmt.Fprintf(sess.Stderr, "rm: cannot remove %q: no such file or directory\n", file)
					failed++
				}
			case statErr != nil:
				fmt.Fprintf(sess.Stderr, "rm: cannot stat %q: %v\n", file, statErr)
				failed++
			case stat.Mode().IsDir() && !*recursive:
				fmt.Fprintf(sess.Stderr, "rm: cannot remove %q: is a directory\n", file)
				failed++
			case stat.Mode().IsDir():
				if err := sess.FS.RemoveAll(file); err != nil {
					fmt.Fprintf(sess.Stderr, "rm: cannot remove %q: %v\n", file, err)
					failed++
				}
			default:
				if err := sess.FS.Remove(file); err != nil {
					fmt.Fprintf(sess.Stderr, "rm: cannot remove %q: %v\n", file, err)
					failed++
				}
			}
		}

		return totalFailure(failed, len(files))
	})
}

var _ Func = rm

func init() {
	register("rm", "Remove files or directories.", rm)
}
