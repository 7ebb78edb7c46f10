package commands

import (
	"bytes"
	"context"
	"io/fs"
	"os/exec"
	"testing"

	"github.com/cush-shell/cush/core/vos"
	"github.com/cush-shell/cush/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecExecutor_lookup(t *testing.T) {
	memFs := vostest.NewMemFs([]string{"/home/user", "/bin"}, "/bin/readonly")
	require.NoError(t, afero.WriteFile(memFs, "/bin/tool", nil, 0755))
	sys := vostest.NewDeterministicOS(memFs, "/home/user", nil)

	executor := NewExecExecutor(sys)

	t.Run("not found", func(t *testing.T) {
		ret, err := executor.Execute(context.Background(), []string{"missing"}, sys)

		assert.ErrorIs(t, err, ErrCommandNotFound)
		assert.Equal(t, exitCommandNotFound, ret)
	})

	t.Run("not executable", func(t *testing.T) {
		ret, err := executor.Execute(context.Background(), []string{"/bin/readonly"}, sys)

		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.Equal(t, exitCannotExecute, ret)
	})

	t.Run("empty argv", func(t *testing.T) {
		ret, err := executor.Execute(context.Background(), nil, sys)

		assert.NoError(t, err)
		assert.Equal(t, 0, ret)
	})
}

func TestExecExecutor_host(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("no sh on the host")
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	vio := vos.NewVIOAdapter(nil, stdout, stderr)
	hostOS := vos.NewHostOS(vio)
	env := vos.NewMapEnvFromEnvList(hostOS.Environ())
	require.NoError(t, env.Setenv("GREETING", "hi"))
	hostOS.VEnv = env

	executor := NewExecExecutor(hostOS)

	ret, err := executor.Execute(context.Background(), []string{sh, "-c", `echo "$GREETING"; echo oops >&2; exit 3`}, vio)
	require.NoError(t, err)

	assert.Equal(t, 3, ret)
	assert.Equal(t, "hi\n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}
