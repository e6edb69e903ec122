// Package graphviz renders the local dependency graph in Graphviz DOT format.
package graphviz

import (
	"errors"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GraphRenderer = (*Renderer)(nil)

// Renderer implements ports.GraphRenderer.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes one node per package and one edge per local dependency, from
// dependent to dependency. Private packages are drawn dashed, dev and peer
// edges carry their dependency type as label.
func (r *Renderer) Render(w io.Writer, catalog domain.Catalog) error {
	g := graph.New(graph.StringHash, graph.Directed())

	for _, pkg := range catalog {
		attrs := []func(*graph.VertexProperties){
			graph.VertexAttribute("label", pkg.Name+"\\n"+pkg.Version),
		}
		if pkg.Private {
			attrs = append(attrs, graph.VertexAttribute("style", "dashed"))
		}
		if err := g.AddVertex(pkg.Name, attrs...); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return zerr.With(zerr.Wrap(err, "failed to add package"), "package", pkg.Name)
		}
	}

	for _, pkg := range catalog {
		for _, t := range domain.DependencyTypes() {
			for name := range pkg.Dependencies.Local[t].All() {
				var attrs []func(*graph.EdgeProperties)
				if t != domain.DependencyTypeProd {
					attrs = append(attrs, graph.EdgeAttribute("label", string(t)))
				}
				err := g.AddEdge(pkg.Name, name, attrs...)
				if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
					return zerr.With(zerr.With(zerr.Wrap(err, "failed to add dependency"), "package", pkg.Name), "dependency", name)
				}
			}
		}
	}

	if err := draw.DOT(g, w, draw.GraphAttribute("rankdir", "LR")); err != nil {
		return zerr.Wrap(err, "failed to render graph")
	}
	return nil
}
