// Package vostest provides deterministic in-memory operating systems for
// tests.
package vostest

import (
	"bytes"
	"io"
	"path/filepath"

	"github.com/cush-shell/cush/core/vos"
	"github.com/spf13/afero"
)

// MemWorkDir is a working directory that only exists in memory. It accepts
// any directory that exists in its filesystem.
type MemWorkDir struct {
	Fs  vos.VFS
	Dir string

	// ChdirErr, if set, is returned by every Chdir call.
	ChdirErr error
	// Calls records every successful Chdir target.
	Calls []string
}

var _ vos.WorkDir = (*MemWorkDir)(nil)

// Getwd implements vos.WorkDir.Getwd.
func (m *MemWorkDir) Getwd() (string, error) {
	return m.Dir, nil
}

// Chdir implements vos.WorkDir.Chdir.
func (m *MemWorkDir) Chdir(dir string) error {
	if m.ChdirErr != nil {
		return m.ChdirErr
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(m.Dir, dir)
	}
	if _, err := m.Fs.Stat(dir); err != nil {
		return err
	}
	m.Dir = filepath.Clean(dir)
	m.Calls = append(m.Calls, m.Dir)
	return nil
}

// NewMemFs creates an in-memory filesystem containing dirs. Entries in files
// are created as regular files.
func NewMemFs(dirs []string, files ...string) vos.VFS {
	fs := afero.NewMemMapFs()
	for _, d := range dirs {
		if err := fs.MkdirAll(d, 0755); err != nil {
			panic(err)
		}
	}
	for _, f := range files {
		if err := fs.MkdirAll(filepath.Dir(f), 0755); err != nil {
			panic(err)
		}
		if err := afero.WriteFile(fs, f, []byte(f), 0644); err != nil {
			panic(err)
		}
	}
	return fs
}

// System is a fully in-memory vos.VOS with captured output.
// Stdout and stderr share a buffer when created with NewCombinedOS.
type System struct {
	*vos.System

	Env    *vos.MapEnv
	WD     *MemWorkDir
	OutBuf *bytes.Buffer
	ErrBuf *bytes.Buffer
}

var _ vos.VOS = (*System)(nil)

// NewDeterministicOS creates an OS rooted at cwd over fs, reading stdin and
// with HOME=/home/user and PATH=/bin set.
func NewDeterministicOS(fs vos.VFS, cwd string, stdin io.Reader) *System {
	env := vos.NewMapEnvFromEnvList([]string{
		"HOME=/home/user",
		"PATH=/bin",
		"PWD=" + cwd,
	})
	wd := &MemWorkDir{Fs: fs, Dir: cwd}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	return &System{
		System: &vos.System{
			VEnv: env,
			VIO:  vos.NewVIOAdapter(stdin, stdout, stderr),
			Fs:   fs,
			Dir:  wd,
		},
		Env:    env,
		WD:     wd,
		OutBuf: stdout,
		ErrBuf: stderr,
	}
}

// NewCombinedOS is like NewDeterministicOS but stdout and stderr write to the
// same buffer, in the order the writes happen.
func NewCombinedOS(fs vos.VFS, cwd string, stdin io.Reader) *System {
	sys := NewDeterministicOS(fs, cwd, stdin)
	sys.ErrBuf = sys.OutBuf
	sys.VIO = vos.NewVIOAdapter(stdin, sys.OutBuf, sys.OutBuf)
	return sys
}
