// Package parser turns raw interpreter input into structured commands.
//
// The grammar is deliberately small: commands are separated by ";",
// arguments by whitespace, and a command may carry at most one input
// redirect ("<"), one output redirect (">") and a background marker ("&").
// There is no quoting or escaping; the markers are located by position on
// the raw text, in a fixed scan order.
package parser

import (
	"errors"
	"strings"
)

// ErrEmptyCommand is returned by Parse when the text contains no command
// tokens, even if redirection or background markers were present.
var ErrEmptyCommand = errors.New("empty command")

const (
	// Separator splits one input line into independent commands.
	Separator = ";"
	// argDelims separate argument tokens.
	argDelims = " \t"
)

// Command is one parsed invocation.
type Command struct {
	// Name is the builtin or executable to run, always equal to Args[0].
	Name string
	// Args holds the argument tokens in input order, Name first.
	Args []string
	// InputFile and OutputFile are redirect targets; empty means the
	// command inherits the session's standard stream.
	InputFile  string
	OutputFile string
	// Background is true when the command should not be waited for.
	Background bool
}

// Parse parses a single command's text.
//
// Markers are located once on the trimmed text and processed in a fixed
// order: "&" first, then "<", then ">". Each marker's target is the first
// whitespace-delimited word following it, bounded by any marker processed
// earlier in the scan order that appears later in the text. The argument
// list is whatever precedes the earliest marker. Only the first occurrence
// of each marker is honored.
func Parse(text string) (*Command, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyCommand
	}

	amp := strings.IndexByte(text, '&')
	in := strings.IndexByte(text, '<')
	out := strings.IndexByte(text, '>')

	cmd := &Command{}

	if amp >= 0 {
		cmd.Background = true
	}

	if in >= 0 {
		bound := len(text)
		if amp > in {
			bound = amp
		}
		cmd.InputFile = firstWord(text[in+1 : bound])
	}

	if out >= 0 {
		bound := len(text)
		if amp > out && amp < bound {
			bound = amp
		}
		if in > out && in < bound {
			bound = in
		}
		cmd.OutputFile = firstWord(text[out+1 : bound])
	}

	argEnd := len(text)
	for _, pos := range []int{amp, in, out} {
		if pos >= 0 && pos < argEnd {
			argEnd = pos
		}
	}

	cmd.Args = Split(text[:argEnd], argDelims)
	if len(cmd.Args) == 0 {
		return nil, ErrEmptyCommand
	}
	cmd.Name = cmd.Args[0]

	return cmd, nil
}

// ParseLine splits a raw line on the command separator and parses each
// piece independently. Pieces that fail to parse are skipped so a line
// with one malformed clause still runs the well-formed ones.
func ParseLine(line string) []*Command {
	var cmds []*Command
	for _, piece := range Split(line, Separator) {
		cmd, err := Parse(piece)
		if err != nil {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// firstWord returns the first whitespace-delimited token of s, or "" if s
// has none.
func firstWord(s string) string {
	words := Split(s, argDelims)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}
