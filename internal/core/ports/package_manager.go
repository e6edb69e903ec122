package ports

import "context"

// InvokeOptions controls a package manager invocation.
type InvokeOptions struct {
	// Package is the name of the package the command runs for. It prefixes output lines.
	Package string
	// Verbose shows the command's standard output.
	Verbose bool
	// Interactive attaches the process to the terminal's standard input.
	Interactive bool
}

// PackageManager invokes the external package manager inside a package directory.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Invoke runs "<package manager> command args..." in dir.
	// A failed run returns a *domain.CommandError carrying the attempted command line.
	Invoke(ctx context.Context, dir, command string, args []string, opts InvokeOptions) error

	// CommandLine renders the command line Invoke would run.
	CommandLine(command string, args []string) string
}
