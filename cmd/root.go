package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/cush-shell/cush/commands"
	"github.com/cush-shell/cush/core/config"
	"github.com/cush-shell/cush/core/logger"
	"github.com/cush-shell/cush/core/vos"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	logLevel    string
	commandFlag string

	exitCode int
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "cush")
}

func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	cfg, err := config.LoadOrDefault(afero.NewOsFs(), cfgPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func isTerminal(f interface{}) bool {
	fd, ok := f.(*os.File)
	return ok && (isatty.IsTerminal(fd.Fd()) || isatty.IsCygwinTerminal(fd.Fd()))
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cush",
	Short: "A small interactive shell with command history",
	Long: `cush reads command lines, expands history references (!!, !n, !-n,
!prefix), records them and runs them as builtins or external programs.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := logger.Configure(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
			return err
		}

		stdin, stdout := cmd.InOrStdin(), cmd.OutOrStdout()
		vio := vos.NewVIOAdapter(stdin, stdout, cmd.ErrOrStderr())

		sh, err := commands.NewShell(vos.NewHostOS(vio), cfg)
		if err != nil {
			return err
		}
		sh.Color = commands.NewColorPrinter(cfg.Color, isTerminal(stdout))

		switch {
		case commandFlag != "":
			sh.Reader = commands.NewBufferedReader(strings.NewReader(commandFlag), nil)

		case isTerminal(stdin):
			rl, err := commands.NewReadlineReader(vio)
			if err != nil {
				return err
			}
			defer rl.Close()

			sh.Reader = rl
			sh.Interactive = true

		default:
			sh.Reader = commands.NewBufferedReader(stdin, io.Discard)
		}

		// The terminal delivers SIGINT to the whole foreground group. Catching it
		// keeps the shell alive while children still get the default action.
		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt)
		defer signal.Stop(interrupts)
		go func() {
			for range interrupts {
				logger.Logger.Debug("interrupt")
			}
		}()

		exitCode = sh.Run(context.Background())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	os.Exit(exitCode)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "config directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "diagnostic log level: debug, info, warn or error")
	rootCmd.Flags().StringVarP(&commandFlag, "command", "c", "", "run the given lines instead of reading stdin")
}
