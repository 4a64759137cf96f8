package executor

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/goshell/gosh/core/parser"
	"github.com/goshell/gosh/core/session"
)

// stdioGuard restores a session's standard streams after one command's
// redirection. Restore is idempotent and must run on every exit path; the
// guard is not reentrant, so only one may be live per session at a time.
type stdioGuard struct {
	sess    *session.Session
	prevIn  io.Reader
	prevOut io.Writer

	in, out  afero.File
	restored bool
}

// applyRedirects opens the command's redirect targets and swaps them into
// the session. On failure the session is left exactly as it was and no
// guard is returned.
func applyRedirects(sess *session.Session, cmd *parser.Command) (*stdioGuard, error) {
	g := &stdioGuard{
		sess:    sess,
		prevIn:  sess.Stdin,
		prevOut: sess.Stdout,
	}

	if cmd.InputFile != "" {
		fd, err := sess.FS.Open(cmd.InputFile)
		if err != nil {
			g.Restore()
			return nil, fmt.Errorf("cannot open %s for input: %w", cmd.InputFile, err)
		}
		g.in = fd
		sess.Stdin = fd
	}

	if cmd.OutputFile != "" {
		fd, err := sess.FS.OpenFile(cmd.OutputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			g.Restore()
			return nil, fmt.Errorf("cannot open %s for output: %w", cmd.OutputFile, err)
		}
		g.out = fd
		sess.Stdout = fd
	}

	return g, nil
}

// Restore puts the saved streams back and closes the redirect files. Safe
// to call more than once; only the first call has any effect.
func (g *stdioGuard) Restore() {
	if g.restored {
		return
	}
	g.restored = true

	g.sess.Stdin = g.prevIn
	g.sess.Stdout = g.prevOut

	if g.in != nil {
		g.in.Close()
	}
	if g.out != nil {
		g.out.Close()
	}
}
