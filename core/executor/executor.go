// Package executor runs parsed commands: it applies redirection,
// dispatches between builtins and external programs, and tracks background
// children.
package executor

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/goshell/gosh/builtins"
	"github.com/goshell/gosh/core/parser"
	"github.com/goshell/gosh/core/session"
)

// Conventional exit statuses for dispatch failures.
const (
	// StatusNotRunnable reports a command that was found but could not
	// be started.
	StatusNotRunnable = 126
	// StatusNotFound reports a command that isn't a builtin and isn't on
	// the PATH.
	StatusNotFound = 127
	// StatusSignaled is the sentinel for a child killed by a signal.
	StatusSignaled = -1
)

// Executor runs commands for a single session. Commands are executed one
// at a time; redirection setup is never overlapped.
type Executor struct {
	Session *session.Session
	Jobs    *Jobs
}

// New creates an executor for the session.
func New(sess *session.Session) *Executor {
	return &Executor{
		Session: sess,
		Jobs:    NewJobs(),
	}
}

// Execute runs one command to completion (or, for background commands, to
// a successful start) and returns its exit status. Whatever happens, the
// session's standard streams are restored before Execute returns.
func (e *Executor) Execute(cmd *parser.Command) int {
	guard, err := applyRedirects(e.Session, cmd)
	if err != nil {
		fmt.Fprintf(e.Session.Stderr, "gosh: %v\n", err)
		return 1
	}
	defer guard.Restore()

	if builtin, ok := builtins.Lookup(cmd.Name); ok {
		return builtin(e.Session, cmd.Args)
	}

	return e.runExternal(cmd)
}

// ReapBackground reports background children that exited since the last
// call. It never blocks; the owning loop calls it between prompts.
func (e *Executor) ReapBackground() {
	e.Jobs.Reap(e.Session.Stdout)
}

func (e *Executor) runExternal(cmd *parser.Command) int {
	path, err := exec.LookPath(cmd.Name)
	if err != nil {
		fmt.Fprintf(e.Session.Stderr, "gosh: %s: command not found\n", cmd.Name)
		return StatusNotFound
	}

	child := exec.Command(path, cmd.Args[1:]...)
	child.Stdin = e.Session.Stdin
	child.Stdout = e.Session.Stdout
	child.Stderr = e.Session.Stderr
	child.Env = os.Environ()

	if err := child.Start(); err != nil {
		fmt.Fprintf(e.Session.Stderr, "gosh: %s: %v\n", cmd.Name, err)
		return StatusNotRunnable
	}

	if cmd.Background {
		pid := child.Process.Pid
		e.Jobs.Track(pid, cmd.Name, func() (int, string) {
			return waitChild(child)
		})
		fmt.Fprintf(e.Session.Stdout, "[%d] %s\n", pid, cmd.Name)
		return 0
	}

	code, signal := waitChild(child)
	if signal != "" {
		fmt.Fprintf(e.Session.Stderr, "gosh: process %d killed by %s\n", child.Process.Pid, signal)
	}
	return code
}

// waitChild blocks until the child exits and translates its status: the
// numeric code for a normal exit, or the signaled sentinel plus the
// signal's name for an abnormal one.
func waitChild(child *exec.Cmd) (int, string) {
	// Wait's ExitError carries the same information as ProcessState.
	_ = child.Wait()

	state := child.ProcessState
	if state == nil {
		return StatusSignaled, ""
	}

	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return StatusSignaled, status.Signal().String()
	}

	return state.ExitCode(), ""
}
