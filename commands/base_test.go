package commands

import (
	"context"
	"testing"

	"github.com/cush-shell/cush/core/config"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestAllBuiltins(t *testing.T) {
	assert.Equal(t, []string{"cd", "echo", "exit", "help", "history", "pwd"}, BuiltinNames())

	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			ts := newTestShell(t, "")

			ret := ts.RunLine(context.Background(), name+" --help")

			assert.Equal(t, 0, ret)
			assert.Contains(t, ts.Output(), "usage: "+name)
		})
	}
}

func TestSimpleCommand_badFlag(t *testing.T) {
	ts := newTestShell(t, "")

	ret := ts.RunLine(context.Background(), "pwd -z")

	assert.Equal(t, 2, ret)
	assert.Contains(t, ts.Output(), "pwd: ")
	assert.Contains(t, ts.Output(), "usage: pwd")
}

func TestColorPrinter(t *testing.T) {
	red := color.New(color.FgRed)

	cases := []struct {
		mode     string
		terminal bool
		want     bool
	}{
		{config.ColorNever, true, false},
		{config.ColorNever, false, false},
		{config.ColorAlways, false, true},
		{config.ColorAuto, true, true},
		{config.ColorAuto, false, false},
	}

	for _, tc := range cases {
		p := NewColorPrinter(tc.mode, tc.terminal)
		assert.Equal(t, tc.want, p.ShouldColor(), "mode=%s terminal=%v", tc.mode, tc.terminal)

		out := p.Sprintf(red, "%d", 42)
		if tc.want {
			assert.Equal(t, "\x1b[31m42\x1b[0m", out)
		} else {
			assert.Equal(t, "42", out)
		}
	}
}
