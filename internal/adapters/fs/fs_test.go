package fs_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mono/internal/adapters/fs"
)

func TestFileSystem_MkdirAllRemoveAll(t *testing.T) {
	mem := afero.NewMemMapFs()
	fsys := fs.NewFileSystem(mem)

	require.NoError(t, fsys.MkdirAll("/ws/packages/a/node_modules/x"))
	require.NoError(t, afero.WriteFile(mem, "/ws/packages/a/node_modules/x/index.js", []byte("module.exports = 1"), 0o600))

	ok, err := afero.DirExists(mem, "/ws/packages/a/node_modules/x")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, fsys.RemoveAll("/ws/packages/a/node_modules"))
	ok, err = afero.Exists(mem, "/ws/packages/a/node_modules")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a missing path is not an error.
	require.NoError(t, fsys.RemoveAll("/ws/packages/a/node_modules"))
}
