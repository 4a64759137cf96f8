// Package session holds the state shared by one interpreter session.
//
// Everything the original design kept in process globals (the history
// store, the exit flag, the active standard streams) lives here instead so
// components receive it explicitly and multiple sessions can coexist in
// tests.
package session

import (
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/goshell/gosh/core/config"
	"github.com/goshell/gosh/core/history"
)

// Session is the mutable state of one running interpreter.
type Session struct {
	// FS backs the history file and the filesystem builtins.
	FS afero.Fs
	// Config is the loaded configuration.
	Config *config.Config
	// History records executed lines.
	History *history.Store

	// Stdin, Stdout and Stderr are the session's current standard
	// streams. The executor's redirection guard swaps Stdin/Stdout for
	// the duration of a single command; only one swap may be in flight
	// at a time.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	lastStatus    int
	exitRequested bool
	exitCode      int
}

// New creates a session bound to the process's standard streams.
func New(fs afero.Fs, cfg *config.Config) *Session {
	return &Session{
		FS:      fs,
		Config:  cfg,
		History: history.NewStore(cfg.HistorySize),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// RequestExit asks the session's owning loop to terminate with code.
func (s *Session) RequestExit(code int) {
	s.exitRequested = true
	s.exitCode = code
}

// ExitRequested reports whether the exit builtin ran.
func (s *Session) ExitRequested() bool {
	return s.exitRequested
}

// ExitCode returns the code passed to RequestExit.
func (s *Session) ExitCode() int {
	return s.exitCode
}

// SetLastStatus records the exit status of the most recent command.
func (s *Session) SetLastStatus(code int) {
	s.lastStatus = code
}

// LastStatus returns the exit status of the most recent command.
func (s *Session) LastStatus() int {
	return s.lastStatus
}
