package commands

import (
	"context"
	"errors"
	"os/exec"

	"github.com/cush-shell/cush/core/vos"
)

// ErrCommandNotFound is returned by an Executor when argv[0] can't be
// resolved to a program.
var ErrCommandNotFound = errors.New("command not found")

// Executor runs external programs on behalf of the shell.
type Executor interface {
	// Execute runs argv to completion with the given standard streams and
	// returns its exit status.
	Execute(ctx context.Context, argv []string, vio vos.VIO) (int, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, argv []string, vio vos.VIO) (int, error)

// Execute implements Executor.Execute.
func (f ExecutorFunc) Execute(ctx context.Context, argv []string, vio vos.VIO) (int, error) {
	return f(ctx, argv, vio)
}

var _ Executor = (ExecutorFunc)(nil)

// ExecExecutor starts host processes. Programs are resolved against the
// PATH of the shell's environment and inherit that environment.
type ExecExecutor struct {
	OS vos.VOS
}

var _ Executor = (*ExecExecutor)(nil)

// NewExecExecutor creates an executor that resolves and runs programs on
// virtualOS.
func NewExecExecutor(virtualOS vos.VOS) *ExecExecutor {
	return &ExecExecutor{OS: virtualOS}
}

// Execute implements Executor.Execute.
func (e *ExecExecutor) Execute(ctx context.Context, argv []string, vio vos.VIO) (int, error) {
	if len(argv) == 0 {
		return 0, nil
	}

	path, err := vos.LookPath(e.OS.FS(), e.OS, argv[0])
	switch {
	case errors.Is(err, vos.ErrNotFound):
		return exitCommandNotFound, ErrCommandNotFound
	case err != nil:
		return exitCannotExecute, err
	}

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Args = argv
	cmd.Env = e.OS.Environ()
	cmd.Stdin = vio.Stdin()
	cmd.Stdout = vio.Stdout()
	cmd.Stderr = vio.Stderr()

	err = cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	case err != nil:
		return exitCannotExecute, err
	}
	return 0, nil
}
