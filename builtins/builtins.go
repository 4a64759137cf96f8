// Package builtins implements the commands the interpreter runs in-process
// rather than by spawning a program.
//
// Handlers receive the parsed argument list (name at index 0) and return an
// exit code: 0 for success, positive when some of several targets failed,
// negative for total failure. Failures never propagate past this boundary;
// they become a return code plus a message on the session's error stream.
package builtins

import (
	"sort"

	"github.com/goshell/gosh/core/session"
)

// Func is the signature every builtin handler implements.
type Func func(sess *session.Session, args []string) int

// Builtin pairs a handler with its registry metadata.
type Builtin struct {
	// Name is the reserved command word.
	Name string
	// Short is a one line description shown by help.
	Short string
	// Run is the handler.
	Run Func
}

var all = make(map[string]Builtin)

// register adds a builtin to the dispatch table. Called from init() in the
// file that implements the command.
func register(name, short string, fn Func) {
	if _, exists := all[name]; exists {
		panic("duplicate builtin: " + name)
	}
	all[name] = Builtin{Name: name, Short: short, Run: fn}
}

// Lookup returns the handler for a reserved name.
func Lookup(name string) (Func, bool) {
	b, ok := all[name]
	if !ok {
		return nil, false
	}
	return b.Run, true
}

// All returns every registered builtin sorted by name.
func All() []Builtin {
	out := make([]Builtin, 0, len(all))
	for _, b := range all {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
