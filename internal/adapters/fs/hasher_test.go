package fs_test

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mono/internal/adapters/fs"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	mem := afero.NewMemMapFs()
	content := []byte("{\n  \"name\": \"a\"\n}\n")
	require.NoError(t, afero.WriteFile(mem, "/a/package.json", content, 0o600))

	hasher := fs.NewHasher(mem)

	sum, err := hasher.ComputeFileHash("/a/package.json")
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64(content), sum)
	assert.Equal(t, sum, hasher.ComputeHash(content))
	assert.NotEqual(t, sum, hasher.ComputeHash([]byte("{}\n")))
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	hasher := fs.NewHasher(afero.NewMemMapFs())

	_, err := hasher.ComputeFileHash("/missing/package.json")
	assert.Error(t, err)
}
