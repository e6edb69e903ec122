package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/mono/internal/core/ports"
)

const (
	// AferoNodeID provides the afero.Fs every filesystem adapter works on.
	AferoNodeID graft.ID = "adapter.fs.afero"
	// FileSystemNodeID provides ports.FileSystem.
	FileSystemNodeID graft.ID = "adapter.fs.filesystem"
	// HasherNodeID provides *Hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[afero.Fs]{
		ID:        AferoNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (afero.Fs, error) {
			return NewOsFs(), nil
		},
	})

	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AferoNodeID},
		Run: func(ctx context.Context) (ports.FileSystem, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileSystem(fs), nil
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AferoNodeID},
		Run: func(ctx context.Context) (*Hasher, error) {
			fs, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(fs), nil
		},
	})
}
