// Package vos abstracts the parts of the operating system the shell core
// touches: environment variables, the filesystem, standard I/O and the
// process working directory. Production code uses the real OS, tests swap in
// in-memory versions.
package vos

const (
	EnvHome   = "HOME"
	EnvPWD    = "PWD"
	EnvOldPWD = "OLDPWD"
	EnvPath   = "PATH"
)

// VOS bundles the OS facilities a shell session needs.
type VOS interface {
	VEnv
	VIO

	FS() VFS
	WorkDir() WorkDir
}

// System is a VOS assembled from its parts.
type System struct {
	VEnv
	VIO

	Fs  VFS
	Dir WorkDir
}

var _ VOS = (*System)(nil)

// FS implements VOS.FS.
func (s *System) FS() VFS {
	return s.Fs
}

// WorkDir implements VOS.WorkDir.
func (s *System) WorkDir() WorkDir {
	return s.Dir
}

// NewHostOS returns a VOS backed by the real environment, filesystem,
// working directory and the given I/O.
func NewHostOS(vio VIO) *System {
	return &System{
		VEnv: NewOSEnv(),
		VIO:  vio,
		Fs:   NewOsFs(),
		Dir:  &OSWorkDir{},
	}
}
