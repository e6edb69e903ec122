package fs

import (
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// Hasher computes content hashes of files.
type Hasher struct {
	fs afero.Fs
}

// NewHasher creates a new Hasher over fs.
func NewHasher(fs afero.Fs) *Hasher {
	return &Hasher{fs: fs}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := h.fs.Open(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file"), "path", path)
	}
	return digest.Sum64(), nil
}

// ComputeHash computes the XXHash of data.
func (h *Hasher) ComputeHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}
