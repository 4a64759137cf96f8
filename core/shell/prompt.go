package shell

import (
	"os"
	"os/user"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/goshell/gosh/core/config"
)

var promptColor = color.New(color.FgGreen, color.Bold)

// Prompt renders the configured prompt template for the current process
// state.
func (s *Shell) Prompt() string {
	host, _ := os.Hostname()
	wd, _ := os.Getwd()
	home, _ := os.UserHomeDir()

	prompt := renderPrompt(s.Session.Config.Prompt, username(), host, wd, home, os.Getuid())

	if s.colorEnabled() {
		return promptColor.Sprint(prompt)
	}
	return prompt
}

// renderPrompt expands the template escapes: \u user, \h host, \w working
// directory (with the home prefix contracted to ~), and \$ which renders
// "#" for root and "$" otherwise.
func renderPrompt(template, username, host, wd, home string, uid int) string {
	prompt := template
	prompt = strings.ReplaceAll(prompt, `\u`, username)
	prompt = strings.ReplaceAll(prompt, `\h`, host)

	if home != "" && strings.HasPrefix(wd, home) {
		wd = "~" + strings.TrimPrefix(wd, home)
	}
	prompt = strings.ReplaceAll(prompt, `\w`, wd)

	if uid == 0 {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return prompt
}

func username() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "?"
}

func (s *Shell) colorEnabled() bool {
	switch s.Session.Config.Color {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	default:
		if fd, ok := s.Session.Stdout.(*os.File); ok {
			return term.IsTerminal(int(fd.Fd()))
		}
		return false
	}
}
