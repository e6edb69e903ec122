package domain

import "fmt"

// CommandError is a failed package manager invocation.
type CommandError struct {
	// Package is the name of the package the command ran for.
	Package string
	// CommandLine is the attempted command line, space separated.
	CommandLine string
	// ExitCode is the process exit code, or -1 when the process did not exit normally.
	ExitCode int
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("[%s] %s: exit code %d", e.Package, e.CommandLine, e.ExitCode)
	}
	return fmt.Sprintf("%s: exit code %d", e.CommandLine, e.ExitCode)
}

// Unwrap returns the underlying cause.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is matches ErrCommandFailed.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}
