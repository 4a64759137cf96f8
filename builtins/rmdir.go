package builtins

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/goshell/gosh/core/session"
)

func rmdir(sess *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "rmdir DIRECTORY...",
		Short: "Remove empty directories.",
	}

	return cmd.Run(sess, args, func() int {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			fmt.Fprintln(sess.Stderr, "rmdir: missing operand")
			return -1
		}

		failed := 0
		for _, dir := range directories {
			stat, err := sess.FS.Stat(dir)
			switch {
			case err != nil:
				fmt.Fprintf(sess.Stderr, "rmdir: failed to remove %q: %v\n", dir, err)
				failed++
				continue
			case !stat.IsDir():
				fmt.Fprintf(sess.Stderr, "rmdir: failed to remove %q: not a directory\n", dir)
				failed++
				continue
			}

			if empty, err := afero.IsEmpty(sess.FS, dir); err != nil || !empty {
				fmt.Fprintf(sess.Stderr, "rmdir: failed to remove %q: directory not empty\n", dir)
				failed++
				continue
			}

			if err := sess.FS.Remove(dir); err != nil {
				fmt.Fprintf(sess.Stderr, "rmdir: failed to remove %q: %v\n", dir, err)
				failed++
			}
		}

		return totalFailure(failed, len(directories))
	})
}

var _ Func = rmdir

func init() {
	register("rmdir", "Remove empty directories.", rmdir)
}
