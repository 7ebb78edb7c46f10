package commands

import (
	"context"
	"testing"

	"github.com/cush-shell/cush/core/vos"
	"github.com/stretchr/testify/assert"
)

func TestCd(t *testing.T) {
	ctx := context.Background()

	t.Run("exports PWD and OLDPWD", func(t *testing.T) {
		ts := newTestShell(t, "")

		assert.Equal(t, 0, ts.RunLine(ctx, "cd /tmp/work"))
		assert.Equal(t, "/tmp/work", ts.OS.Getenv(vos.EnvPWD))
		assert.Equal(t, "/home/user", ts.OS.Getenv(vos.EnvOldPWD))
		assert.Equal(t, []string{"/tmp/work"}, ts.OS.WD.Calls)
	})

	t.Run("failure leaves the directory", func(t *testing.T) {
		ts := newTestShell(t, "")

		assert.Equal(t, 1, ts.RunLine(ctx, "cd /nope"))
		assert.Equal(t, "/home/user", ts.Navigator.Cwd())
		assert.Empty(t, ts.OS.WD.Calls)
	})

	t.Run("no HOME", func(t *testing.T) {
		ts := newTestShell(t, "")
		assert.NoError(t, ts.OS.Unsetenv(vos.EnvHome))

		assert.Equal(t, 1, ts.RunLine(ctx, "cd"))
		assert.Equal(t, "cush: cd: HOME not set\n", ts.Output())
	})

	t.Run("no OLDPWD", func(t *testing.T) {
		ts := newTestShell(t, "")

		assert.Equal(t, 1, ts.RunLine(ctx, "cd -"))
		assert.Equal(t, "cush: cd: OLDPWD not set\n", ts.Output())
	})
}

func TestHistoryBuiltin(t *testing.T) {
	ctx := context.Background()

	cases := map[string]struct {
		line    string
		wantRet int
		want    string
	}{
		"tail":      {"history 2", 0, "    2  ls\n    3  history 2\n"},
		"zero":      {"history 0", 0, ""},
		"oversized": {"history 50", 0, "    1  pwd\n    2  ls\n    3  history 50\n"},
		"negative":  {"history -- -1", 1, "cush: history: -1: numeric argument required\n"},
		"word":      {"history x", 1, "cush: history: x: numeric argument required\n"},
		"too many":  {"history 1 2", 1, "cush: history: too many arguments\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			ts := newTestShell(t, "")
			ts.RunLine(ctx, "pwd")
			ts.RunLine(ctx, "ls")
			ts.OS.OutBuf.Reset()

			assert.Equal(t, tc.wantRet, ts.RunLine(ctx, tc.line))
			assert.Equal(t, tc.want, ts.Output())
		})
	}
}

func TestExit(t *testing.T) {
	ctx := context.Background()

	t.Run("numeric", func(t *testing.T) {
		ts := newTestShell(t, "")

		assert.Equal(t, 4, ts.RunLine(ctx, "exit 260"))
		assert.True(t, ts.Quit)
	})

	t.Run("not numeric", func(t *testing.T) {
		ts := newTestShell(t, "")

		assert.Equal(t, 2, ts.RunLine(ctx, "exit x"))
		assert.True(t, ts.Quit)
		assert.Equal(t, "cush: exit: x: numeric argument required\n", ts.Output())
	})

	t.Run("too many arguments", func(t *testing.T) {
		ts := newTestShell(t, "")

		assert.Equal(t, 1, ts.RunLine(ctx, "exit 1 2"))
		assert.False(t, ts.Quit)
	})

	t.Run("usage doesn't quit", func(t *testing.T) {
		ts := newTestShell(t, "")

		assert.Equal(t, 0, ts.RunLine(ctx, "exit --help"))
		assert.False(t, ts.Quit)
		assert.Contains(t, ts.Output(), "usage: exit [n]")
	})
}

func TestHelp(t *testing.T) {
	ctx := context.Background()

	t.Run("lists builtins", func(t *testing.T) {
		ts := newTestShell(t, "")

		assert.Equal(t, 0, ts.RunLine(ctx, "help"))
		assert.Contains(t, ts.Output(), "\ncd\necho\nexit\nhelp\nhistory\npwd\n")
	})

	t.Run("topic", func(t *testing.T) {
		ts := newTestShell(t, "")

		assert.Equal(t, 0, ts.RunLine(ctx, "help history"))
		assert.Contains(t, ts.Output(), "usage: history [n]")
	})

	t.Run("exit keeps the shell running", func(t *testing.T) {
		ts := newTestShell(t, "help exit\necho still-alive\n")

		assert.Equal(t, 0, ts.Run(ctx))
		assert.False(t, ts.Quit)
		assert.Contains(t, ts.Output(), "usage: exit [n]")
		assert.Contains(t, ts.Output(), "still-alive\n")
		assert.NotContains(t, ts.Output(), "numeric argument required")
	})

	t.Run("help on itself", func(t *testing.T) {
		ts := newTestShell(t, "")

		assert.Equal(t, 0, ts.RunLine(ctx, "help help"))
		assert.Contains(t, ts.Output(), "usage: help [name ...]")
		assert.NotContains(t, ts.Output(), "no help topics")
	})

	t.Run("unknown topic", func(t *testing.T) {
		ts := newTestShell(t, "")

		assert.Equal(t, 1, ts.RunLine(ctx, "help frobnicate"))
		assert.Equal(t, "cush: help: no help topics match `frobnicate'\n", ts.Output())
	})
}
