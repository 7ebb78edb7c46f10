package vos

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// VFS is the filesystem view used to validate paths before acting on them.
type VFS = afero.Fs

// NewOsFs returns the host filesystem.
func NewOsFs() VFS {
	return afero.NewOsFs()
}

// ErrNotFound is the error resulting if a path search failed to find an
// executable file.
var ErrNotFound = exec.ErrNotFound

func findExecutable(vfs VFS, file string) error {
	d, err := vfs.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories named by
// the PATH variable of env. If file contains a slash, it is tried directly
// and the PATH is not consulted. The result may be an absolute path or a path
// relative to the current directory.
func LookPath(vfs VFS, env VEnv, file string) (string, error) {
	if strings.Contains(file, "/") {
		err := findExecutable(vfs, file)
		if err == nil {
			return file, nil
		}
		return "", err
	}
	path := env.Getenv(EnvPath)
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(vfs, path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}
