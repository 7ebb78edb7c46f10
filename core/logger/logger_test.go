package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug": log.DebugLevel,
		"INFO":  log.InfoLevel,
		"warn":  log.WarnLevel,
		"":      log.WarnLevel,
		"error": log.ErrorLevel,
	}

	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			got, err := ParseLevel(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestConfigure(t *testing.T) {
	orig := Logger
	t.Cleanup(func() { Logger = orig })

	buf := &bytes.Buffer{}
	require.NoError(t, Configure("info", buf))

	Logger.Debug("hidden")
	Logger.Info("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")

	assert.Error(t, Configure("loud", buf))
}

func TestNewSession(t *testing.T) {
	orig := Logger
	t.Cleanup(func() { Logger = orig })

	buf := &bytes.Buffer{}
	require.NoError(t, Configure("debug", buf))

	NewSession().Debug("hello")
	assert.Contains(t, buf.String(), "session=")
}
