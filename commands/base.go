package commands

import (
	"fmt"
	"io"

	"github.com/cush-shell/cush/core/config"
	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"
)

// SimpleCommand handles flag parsing and help output for builtins.
type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// Args returns the positional arguments left after flag parsing.
func (s *SimpleCommand) Args() []string {
	return s.Flags().Args()
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses args, which include the command name, and calls the callback if
// parsing was successful.
func (s *SimpleCommand) Run(sh *Shell, args []string, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	if err := opts.Getopt(args, nil); err != nil {
		sh.Log.Debug("invalid builtin invocation", "args", args, "err", err)
		fmt.Fprintf(sh.Stderr(), "%s: %s\n\n", args[0], err)
		s.PrintHelp(sh.Stderr())
		return 2
	}

	if *s.ShowHelp {
		s.PrintHelp(sh.Stdout())
		return 0
	}

	return callback()
}

var (
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
)

// ColorPrinter decides whether output gets ANSI colors.
type ColorPrinter struct {
	mode     string
	terminal bool
}

// NewColorPrinter creates a printer for one of the config.Color* modes,
// terminal reports whether the output is a terminal.
func NewColorPrinter(mode string, terminal bool) *ColorPrinter {
	return &ColorPrinter{mode: mode, terminal: terminal}
}

func (c *ColorPrinter) ShouldColor() bool {
	switch c.mode {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	default:
		return c.terminal
	}
}

func (c *ColorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if !c.ShouldColor() {
		return fmt.Sprintf(format, a...)
	}

	// The color package disables itself when stdout isn't a terminal, which
	// would override "always".
	forced := *col
	forced.EnableColor()
	return forced.Sprintf(format, a...)
}
