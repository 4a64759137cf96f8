package builtins

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goshell/gosh/core/session"
)

var (
	octalEscape = regexp.MustCompile(`\\0[0-8][0-8]?[0-8]?`)
	hexEscape   = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)

	charEscapes = strings.NewReplacer(
		`\n`, "\n",
		`\r`, "\r",
		`\t`, "\t",
		`\\`, `\`,
		`\b`, "\b",
		`\a`, "\a",
		`\f`, "\f",
		`\v`, "\v",
	)
)

// unescape decodes backslash escapes: the single-character ones plus
// \0NNN octal and \xHH hex. Sequences that don't decode are left as-is.
func unescape(s string) string {
	s = charEscapes.Replace(s)

	numeric := func(base int) func(string) string {
		return func(match string) string {
			n, err := strconv.ParseInt(match[2:], base, 8)
			if err != nil {
				return match
			}
			return string(rune(n))
		}
	}
	s = octalEscape.ReplaceAllStringFunc(s, numeric(8))
	s = hexEscape.ReplaceAllStringFunc(s, numeric(16))
	return s
}

func echo(sess *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "echo [-n] [-e] [ARG] ...",
		Short: "Display a line of text.",
	}

	opt := cmd.Flags()
	noNewline := opt.Bool('n', "do not output the trailing newline")
	escaped := opt.Bool('e', "interpret backslash escapes")

	return cmd.Run(sess, args, func() int {
		text := strings.Join(opt.Args(), " ")
		if *escaped {
			text = unescape(text)
		}
		if !*noNewline {
			text += "\n"
		}

		fmt.Fprint(sess.Stdout, text)
		return 0
	})
}

var _ Func = echo

func init() {
	register("echo", "Display a line of text.", echo)
}
