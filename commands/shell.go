package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/charmbracelet/log"
	"github.com/cush-shell/cush/core/config"
	"github.com/cush-shell/cush/core/history"
	"github.com/cush-shell/cush/core/logger"
	"github.com/cush-shell/cush/core/vos"
)

const (
	// ShellName prefixes diagnostics written by the shell itself.
	ShellName = "cush"

	exitSyntaxError     = 2
	exitCannotExecute   = 126
	exitCommandNotFound = 127
)

// Shell reads lines, expands history references, records them and
// dispatches them to builtins or external programs.
type Shell struct {
	VirtualOS vos.VOS
	Config    *config.Configuration
	Log       *log.Logger

	// Reader supplies lines, it must be set before Run is called.
	Reader LineReader
	// Executor runs non-builtin commands.
	Executor Executor
	// Interactive enables the prompt.
	Interactive bool
	Color       *ColorPrinter

	History   *history.Store
	Expander  *history.Expander
	Navigator *vos.Navigator

	lastRet  int
	exitCode int

	// Set to true to quit the shell
	Quit bool
}

// NewShell creates a shell session on virtualOS. The session starts with an
// empty history and the OS's current working directory.
func NewShell(virtualOS vos.VOS, cfg *config.Configuration) (*Shell, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	nav, err := vos.NewNavigator(virtualOS.FS(), virtualOS, virtualOS.WorkDir())
	if err != nil {
		return nil, err
	}

	store := history.NewStore(cfg.History.MaxEntries)

	return &Shell{
		VirtualOS: virtualOS,
		Config:    cfg,
		Log:       logger.NewSession(),
		Executor:  NewExecExecutor(virtualOS),
		Color:     NewColorPrinter(cfg.Color, false),
		History:   store,
		Expander:  history.NewExpander(store),
		Navigator: nav,
	}, nil
}

// Stdout is where the shell and its builtins write output.
func (s *Shell) Stdout() io.Writer {
	return s.VirtualOS.Stdout()
}

// Stderr is where the shell and its builtins write diagnostics.
func (s *Shell) Stderr() io.Writer {
	return s.VirtualOS.Stderr()
}

// LastStatus returns the exit status of the most recent command.
func (s *Shell) LastStatus() int {
	return s.lastRet
}

func (s *Shell) prompt() string {
	if !s.Interactive {
		return ""
	}
	return s.Color.Sprintf(ColorBoldGreen, "%s", s.Config.Prompt)
}

func (s *Shell) printErr(err error) {
	fmt.Fprintf(s.Stderr(), "%s %v\n", s.Color.Sprintf(ColorBoldRed, "%s:", ShellName), err)
}

// Run reads and executes lines until input ends or exit is called. It
// returns the shell's exit status.
func (s *Shell) Run(ctx context.Context) int {
	s.Log.Debug("session started", "interactive", s.Interactive, "cwd", s.Navigator.Cwd())
	defer s.Log.Debug("session ended", "status", s.lastRet, "entries", s.History.Len())

	for !s.Quit {
		line, err := s.Reader.ReadLine(s.prompt())

		switch {
		case err == io.EOF:
			return s.lastRet // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue

		case err != nil:
			s.Log.Error("reading input", "err", err)
			return 1

		case ctx.Err() != nil:
			return s.lastRet
		}

		s.RunLine(ctx, line)
	}
	return s.exitCode
}

// RunLine handles a single raw line: history expansion, recording and
// dispatch. Blank lines are ignored and lines that fail to expand are
// reported without being recorded.
func (s *Shell) RunLine(ctx context.Context, line string) int {
	line = strings.TrimSpace(line)
	if line == "" {
		return s.lastRet
	}

	resolved, expanded, err := s.Expander.Expand(line)
	if err != nil {
		s.Log.Debug("history expansion failed", "line", line, "err", err)
		s.printErr(err)
		s.lastRet = 1
		return s.lastRet
	}

	if expanded && s.Config.History.EchoExpansion {
		fmt.Fprintln(s.Stdout(), resolved)
	}

	idx := s.History.Append(resolved)
	if s.Reader != nil {
		s.Reader.Remember(resolved)
	}
	s.Log.Debug("recorded", "index", idx, "line", resolved)

	s.lastRet = s.dispatch(ctx, resolved)
	return s.lastRet
}

func (s *Shell) dispatch(ctx context.Context, line string) int {
	argv, err := shlex.Split(line, true)
	if err != nil {
		s.printErr(fmt.Errorf("syntax error: %v", err))
		return exitSyntaxError
	}
	if len(argv) == 0 {
		return s.lastRet
	}

	// Execute builtins
	if builtin, ok := AllBuiltins[argv[0]]; ok {
		return builtin.Main(s, argv)
	}

	// Execute program
	ret, err := s.Executor.Execute(ctx, argv, s.VirtualOS)
	switch {
	case errors.Is(err, ErrCommandNotFound):
		s.printErr(fmt.Errorf("%s: %w", argv[0], err))
		return exitCommandNotFound
	case err != nil:
		s.Log.Debug("exec failed", "argv", argv, "err", err)
		s.printErr(fmt.Errorf("%s: %w", argv[0], err))
		return exitCannotExecute
	}
	return ret
}
