package builtins

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("path semantics differ on windows")
	}

	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(orig) })

	t.Run("to directory", func(t *testing.T) {
		sess, _ := newTestSession(t)
		dir := t.TempDir()

		assert.Equal(t, 0, cd(sess, []string{"cd", dir}))

		wd, err := os.Getwd()
		require.NoError(t, err)
		// TempDir may be behind a symlink, compare resolved paths.
		expected, _ := filepath.EvalSymlinks(dir)
		got, _ := filepath.EvalSymlinks(wd)
		assert.Equal(t, expected, got)
	})

	t.Run("missing directory", func(t *testing.T) {
		sess, out := newTestSession(t)
		assert.Equal(t, -1, cd(sess, []string{"cd", "/definitely/not/here"}))
		assert.Contains(t, out.String(), "cd:")
	})

	t.Run("too many arguments", func(t *testing.T) {
		sess, out := newTestSession(t)
		assert.Equal(t, -1, cd(sess, []string{"cd", "a", "b"}))
		assert.Contains(t, out.String(), "too many arguments")
	})
}

func TestPwd(t *testing.T) {
	sess, out := newTestSession(t)
	assert.Equal(t, 0, pwd(sess, []string{"pwd"}))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd+"\n", out.String())
}

func TestExit(t *testing.T) {
	t.Run("default code", func(t *testing.T) {
		sess, _ := newTestSession(t)
		assert.Equal(t, 0, exitBuiltin(sess, []string{"exit"}))
		assert.True(t, sess.ExitRequested())
		assert.Equal(t, 0, sess.ExitCode())
	})

	t.Run("explicit code", func(t *testing.T) {
		sess, _ := newTestSession(t)
		assert.Equal(t, 3, exitBuiltin(sess, []string{"exit", "3"}))
		assert.True(t, sess.ExitRequested())
		assert.Equal(t, 3, sess.ExitCode())
	})

	t.Run("non-numeric", func(t *testing.T) {
		sess, out := newTestSession(t)
		assert.Equal(t, 2, exitBuiltin(sess, []string{"exit", "nope"}))
		assert.True(t, sess.ExitRequested())
		assert.True(t, strings.Contains(out.String(), "numeric argument required"))
	})
}

func TestClear(t *testing.T) {
	sess, out := newTestSession(t)
	assert.Equal(t, 0, clear(sess, []string{"clear"}))
	assert.Equal(t, "\033[2J\033[H", out.String())
}
