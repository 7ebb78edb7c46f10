package config

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := log.New(io.Discard)

	cfg, err := Initialize(fs, "/home/u/.config/cush", logger)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	contents, err := afero.ReadFile(fs, "/home/u/.config/cush/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, defaultConfigData, contents)

	t.Run("keeps existing config", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/home/u/.config/cush/config.yaml", []byte("prompt: \"% \"\n"), 0600))

		cfg, err := Initialize(fs, "/home/u/.config/cush", logger)
		require.NoError(t, err)
		assert.Equal(t, "% ", cfg.Prompt)
	})
}
