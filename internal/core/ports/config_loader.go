package ports

import "go.trai.ch/mono/internal/core/domain"

// WorkspaceLoader loads the workspace root of a directory.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type WorkspaceLoader interface {
	// Load reads the root manifest and tool settings found in dir.
	// It creates the packages directory when missing.
	Load(dir string) (*domain.Workspace, error)
}
