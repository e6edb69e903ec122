package ports

import "go.trai.ch/mono/internal/core/domain"

// CatalogLoader builds the package catalog of a packages directory.
//
//go:generate mockgen -source=catalog_loader.go -destination=mocks/mock_catalog_loader.go -package=mocks
type CatalogLoader interface {
	// Load reads every package manifest under packagesDir and classifies dependencies.
	// It fails on the first missing or invalid manifest.
	Load(packagesDir string) (domain.Catalog, error)
}
