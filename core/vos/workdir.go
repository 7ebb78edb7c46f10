package vos

import "os"

// WorkDir is the process working directory.
type WorkDir interface {
	// Getwd returns the current directory.
	Getwd() (string, error)
	// Chdir changes the current directory, relative paths are resolved by the
	// implementation.
	Chdir(dir string) error
}

// OSWorkDir changes the real process working directory so child processes
// started afterwards inherit it.
type OSWorkDir struct{}

var _ WorkDir = (*OSWorkDir)(nil)

// Getwd implements WorkDir.Getwd.
func (*OSWorkDir) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir implements WorkDir.Chdir.
func (*OSWorkDir) Chdir(dir string) error {
	return os.Chdir(dir)
}
