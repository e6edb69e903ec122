package ports

import (
	"io"

	"go.trai.ch/mono/internal/core/domain"
)

// GraphRenderer writes a visual representation of the local dependency graph.
//
//go:generate mockgen -source=graph_renderer.go -destination=mocks/mock_graph_renderer.go -package=mocks
type GraphRenderer interface {
	Render(w io.Writer, catalog domain.Catalog) error
}
