package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingDependency is returned when a package references a local dependency that is not in the catalog.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the local dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrVersionConflict is returned when one external dependency is declared with several ranges.
	ErrVersionConflict = zerr.New("conflicting dependency versions")

	// ErrPipelineFailed is returned when at least one pipeline of a batch failed.
	ErrPipelineFailed = zerr.New("pipeline failed")

	// ErrCommandFailed is returned when a package manager invocation exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrInvalidManifest is returned when a package.json cannot be parsed or has the wrong shape.
	ErrInvalidManifest = zerr.New("invalid manifest")

	// ErrManifestNotFound is returned when a package directory has no package.json.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrInvalidVersion is returned when a version string is not a semantic version.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrNotADirectory is returned when a link source is not a directory.
	ErrNotADirectory = zerr.New("not a directory")
)
