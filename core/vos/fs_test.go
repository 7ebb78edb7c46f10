package vos

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

type lookPathCase struct {
	path    string
	file    string
	want    string
	wantErr error
}

func newLookPathFs(t *testing.T) VFS {
	t.Helper()

	memFs := afero.NewMemMapFs()
	for name, perm := range map[string]fs.FileMode{
		"/bin/ls":          0755,
		"/usr/bin/ls":      0755,
		"/usr/bin/notes":   0644,
		"/home/u/run.sh":   0700,
		"/home/u/bin/tool": 0755,
	} {
		if err := afero.WriteFile(memFs, name, nil, perm); err != nil {
			t.Fatal(err)
		}
	}
	if err := memFs.MkdirAll("/usr/bin/dir", 0755); err != nil {
		t.Fatal(err)
	}
	return memFs
}

func TestLookPath(t *testing.T) {
	cases := map[string]lookPathCase{
		"first match wins": {path: "/bin:/usr/bin", file: "ls", want: "/bin/ls"},
		"later entry":      {path: "/nowhere:/usr/bin", file: "ls", want: "/usr/bin/ls"},
		"not executable":   {path: "/usr/bin", file: "notes", wantErr: ErrNotFound},
		"directory":        {path: "/usr/bin", file: "dir", wantErr: ErrNotFound},
		"missing":          {path: "/bin:/usr/bin", file: "nope", wantErr: ErrNotFound},
		"empty path":       {path: "", file: "ls", wantErr: ErrNotFound},
		"slash skips path": {path: "/bin", file: "/home/u/run.sh", want: "/home/u/run.sh"},
		"slash not found":  {path: "/bin", file: "/home/u/gone", wantErr: ErrNotFound},
		"slash no exec":    {path: "/bin", file: "/usr/bin/notes", wantErr: fs.ErrPermission},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			env := NewMapEnvFromEnvList([]string{EnvPath + "=" + tc.path})

			got, err := LookPath(newLookPathFs(t), env, tc.file)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
