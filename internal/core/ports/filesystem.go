package ports

// FileSystem is the subset of filesystem operations used by the application layer.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error
	// RemoveAll removes path and its children. A missing path is not an error.
	RemoveAll(path string) error
}
