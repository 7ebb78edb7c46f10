package cmd

import (
	"github.com/cush-shell/cush/core/config"
	"github.com/cush-shell/cush/core/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// initCmd writes the default configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if err := logger.Configure("info", cmd.ErrOrStderr()); err != nil {
			return err
		}

		_, err := config.Initialize(afero.NewOsFs(), cfgPath, logger.Logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
