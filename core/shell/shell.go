// Package shell owns the interactive read-eval loop: prompt rendering,
// line input, history expansion and recording, and dispatch to the
// executor.
package shell

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/abiosoft/readline"

	"github.com/goshell/gosh/core/executor"
	"github.com/goshell/gosh/core/history"
	"github.com/goshell/gosh/core/parser"
	"github.com/goshell/gosh/core/session"
)

// Shell is one interactive interpreter bound to a session.
type Shell struct {
	Session  *session.Session
	Executor *executor.Executor
	Readline *readline.Instance

	signals *signalFlag
}

// New creates a shell reading from the session's streams.
func New(sess *session.Session) (*Shell, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(sess.Stdin),
		Stdout: sess.Stdout,
		Stderr: sess.Stderr,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		Session:  sess,
		Executor: executor.New(sess),
		Readline: rl,
		signals:  watchSignals(sess.Stdout),
	}, nil
}

// Run reads and executes lines until EOF or the exit builtin, returning
// the session's final status.
func (s *Shell) Run() int {
	if motd := s.Session.Config.Motd; motd != "" {
		fmt.Fprint(s.Session.Stdout, motd)
	}

	for !s.Session.ExitRequested() {
		s.Executor.ReapBackground()

		// A signal received since the last command cancels the pending
		// input line; the handler already printed a newline.
		s.signals.consume()

		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return s.Session.LastStatus() // input closed, quit

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("readline: %v", err)
			continue

		case strings.TrimSpace(line) == "":
			continue

		default:
			s.RunLine(line)
		}
	}

	return s.Session.ExitCode()
}

// RunLine expands, parses and executes one raw input line, recording it in
// history if anything ran.
func (s *Shell) RunLine(line string) {
	expanded, err := history.Expand(line, s.Session.History)
	if err != nil {
		fmt.Fprintf(s.Session.Stderr, "gosh: %v\n", err)
		s.Session.SetLastStatus(1)
		return
	}

	executed := false
	for _, cmd := range parser.ParseLine(expanded) {
		s.Session.SetLastStatus(s.Executor.Execute(cmd))
		executed = true

		if s.Session.ExitRequested() {
			break
		}
	}

	// The post-expansion text is recorded, so recall never re-expands.
	if executed {
		s.Session.History.Append(history.Entry{
			Timestamp: time.Now(),
			ExitCode:  s.Session.LastStatus(),
			Command:   expanded,
		})
	}
}

// Close releases the shell's input resources.
func (s *Shell) Close() error {
	s.signals.stop()
	return s.Readline.Close()
}
