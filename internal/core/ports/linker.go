package ports

// Linker creates directory symlinks.
//
//go:generate mockgen -source=linker.go -destination=mocks/mock_linker.go -package=mocks
type Linker interface {
	// Link makes dest a symlink to the directory src, replacing whatever exists at dest.
	Link(src, dest string) error
}
