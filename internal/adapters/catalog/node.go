package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/mono/internal/adapters/fs"
	"go.trai.ch/mono/internal/adapters/jsonstore"
	"go.trai.ch/mono/internal/adapters/logger"
	"go.trai.ch/mono/internal/core/ports"
)

// NodeID is the unique identifier for the catalog loader Graft node.
const NodeID graft.ID = "adapter.catalog_loader"

func init() {
	graft.Register(graft.Node[ports.CatalogLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.AferoNodeID, jsonstore.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CatalogLoader, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fsys, store, log), nil
		},
	})
}
