package builtins

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/goshell/gosh/core/session"
)

func touch(sess *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "touch [OPTION...] FILE...",
		Short: "Update the access and modification times of files to now.",
	}

	noCreate := cmd.Flags().BoolLong("no-create", 'c', "don't create files")

	return cmd.Run(sess, args, func() int {
		paths := cmd.Flags().Args()
		if len(paths) == 0 {
			fmt.Fprintln(sess.Stderr, "touch: missing file operand")
			return -1
		}

		now := time.Now()

		failed := 0
		for _, path := range paths {
			err := sess.FS.Chtimes(path, now, now)
			switch {
			case errors.Is(err, fs.ErrNotExist) && !*noCreate:
				fd, err := sess.FS.Create(path)
				if err != nil {
					fmt.Fprintf(sess.Stderr, "touch: cannot touch %q: %s\n", path, err)
					failed++
					continue
				}
				fd.Close()
			case errors.Is(err, fs.ErrNotExist) && *noCreate:
				// Not an error.
			case err != nil:
				fmt.Fprintf(sess.Stderr, "touch: setting times of %q: %s\n", path, err)
				failed++
			}
		}

		return totalFailure(failed, len(paths))
	})
}

var _ Func = touch

func init() {
	register("touch", "Update file timestamps, creating files as needed.", touch)
}
