package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir unless one already
// exists, then loads it.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	if err := fsys.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	exists, err := afero.Exists(fsys, configPath)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Info("Configuration already exists", "path", configPath)
	} else {
		logger.Info("Writing default configuration", "path", configPath)
		if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	}

	return Load(fsys, dir)
}
