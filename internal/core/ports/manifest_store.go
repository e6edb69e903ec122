// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/mono/internal/core/domain"

// ManifestStore reads and writes JSON manifests while preserving their layout.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Read returns the document stored at path.
	// It returns an error if the file is missing or is not a JSON object.
	Read(path string) (*domain.Document, error)

	// Update stages doc as the new content of path.
	Update(path string, doc *domain.Document)

	// Save commits the staged content of path. Unchanged content is not rewritten.
	Save(path string) error
}
