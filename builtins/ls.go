package builtins

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/afero"

	"github.com/goshell/gosh/core/session"
)

func ls(sess *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "ls [DIRECTORY...]",
		Short: "List directory contents.",
	}

	return cmd.Run(sess, args, func() int {
		dirs := cmd.Flags().Args()
		if len(dirs) == 0 {
			dirs = []string{"."}
		}

		failed := 0
		for i, dir := range dirs {
			if len(dirs) > 1 {
				if i > 0 {
					fmt.Fprintln(sess.Stdout)
				}
				fmt.Fprintf(sess.Stdout, "%s:\n", dir)
			}

			if err := listDir(sess, dir); err != nil {
				fmt.Fprintf(sess.Stderr, "ls: cannot access %q: %v\n", dir, err)
				failed++
			}
		}

		return totalFailure(failed, len(dirs))
	})
}

func listDir(sess *session.Session, dir string) error {
	infos, err := afero.ReadDir(sess.FS, dir)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(sess.Stdout, 8, 8, 4, ' ', 0)
	defer tw.Flush()

	for _, f := range infos {
		name := f.Name()
		if f.IsDir() {
			name = colorize(sess, colorBoldBlue, "%s", name)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			f.Mode().String(), f.Size(), f.ModTime().Format("Jan _2 15:04"), name)
	}

	return nil
}

var _ Func = ls

func init() {
	register("ls", "List directory contents.", ls)
}
