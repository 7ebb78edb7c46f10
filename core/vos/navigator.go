package vos

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"syscall"
)

var (
	ErrNoHome            = errors.New("HOME not set")
	ErrNoOldPWD          = errors.New("OLDPWD not set")
	ErrDirectoryNotFound = errors.New("No such file or directory")
	ErrNotADirectory     = errors.New("Not a directory")
	ErrPermissionDenied  = errors.New("Permission denied")
)

// PathError records a failed directory change.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Navigator implements cd. It tracks the shell's working directory and keeps
// the process working directory in step with it.
type Navigator struct {
	fs  VFS
	env VEnv
	wd  WorkDir

	cwd string
}

// NewNavigator creates a navigator starting in the current directory of wd.
// HOME is looked up in env each time it's needed.
func NewNavigator(vfs VFS, env VEnv, wd WorkDir) (*Navigator, error) {
	cwd, err := wd.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	return &Navigator{
		fs:  vfs,
		env: env,
		wd:  wd,
		cwd: filepath.Clean(cwd),
	}, nil
}

// Cwd returns the current working directory.
func (n *Navigator) Cwd() string {
	return n.cwd
}

// Change moves to path. An empty path means the home directory. On failure
// the working directory is left untouched.
func (n *Navigator) Change(path string) error {
	if path == "" {
		home, ok := n.env.LookupEnv(EnvHome)
		if !ok || home == "" {
			return &PathError{Op: "cd", Err: ErrNoHome}
		}
		path = home
	}

	return n.chdir(path)
}

// Previous moves back to OLDPWD and returns the new directory.
func (n *Navigator) Previous() (string, error) {
	old, ok := n.env.LookupEnv(EnvOldPWD)
	if !ok || old == "" {
		return "", &PathError{Op: "cd", Err: ErrNoOldPWD}
	}

	if err := n.chdir(old); err != nil {
		return "", err
	}
	return n.cwd, nil
}

func (n *Navigator) chdir(path string) error {
	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(n.cwd, target)
	}
	target = filepath.Clean(target)

	info, err := n.fs.Stat(target)
	switch {
	case err != nil:
		return &PathError{Op: "cd", Path: path, Err: classifyDirError(err)}
	case !info.IsDir():
		return &PathError{Op: "cd", Path: path, Err: ErrNotADirectory}
	}

	if err := n.wd.Chdir(target); err != nil {
		return &PathError{Op: "cd", Path: path, Err: classifyDirError(err)}
	}

	prev := n.cwd
	n.cwd = target

	// The move already happened, failing to export the variables shouldn't undo it.
	_ = n.env.Setenv(EnvOldPWD, prev)
	_ = n.env.Setenv(EnvPWD, target)

	return nil
}

func classifyDirError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrDirectoryNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, syscall.ENOTDIR):
		return ErrNotADirectory
	default:
		return err
	}
}
