// Package npm provides the package manager adapter.
package npm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageManager = (*Manager)(nil)

// Manager implements ports.PackageManager using os/exec.
type Manager struct {
	logger ports.Logger
	name   string
}

// NewManager creates a new Manager running the executable with the given base name.
func NewManager(logger ports.Logger, name string) *Manager {
	if name == "" {
		name = domain.DefaultPackageManager
	}
	return &Manager{logger: logger, name: name}
}

// SetExecutable changes the executable base name. It must not be called while
// invocations are running.
func (m *Manager) SetExecutable(name string) {
	if name != "" {
		m.name = name
	}
}

// Executable returns the platform specific executable name.
func (m *Manager) Executable() string {
	if runtime.GOOS == "windows" && !strings.Contains(m.name, ".") {
		return m.name + ".cmd"
	}
	return m.name
}

// CommandLine renders the command line Invoke would run.
func (m *Manager) CommandLine(command string, args []string) string {
	return strings.Join(append([]string{m.name, command}, args...), " ")
}

// Invoke runs the package manager in dir. Output is logged line by line with
// the package prefix and mirrored to the vertex carried by ctx.
func (m *Manager) Invoke(ctx context.Context, dir, command string, args []string, opts ports.InvokeOptions) error {
	cmd := exec.CommandContext(ctx, m.Executable(), append([]string{command}, args...)...) //nolint:gosec // package manager arguments
	cmd.Dir = dir

	var stdout, stderr *logWriter
	if opts.Interactive {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		prefix := ""
		if opts.Package != "" {
			prefix = "[" + opts.Package + "] "
		}
		stdout = &logWriter{logger: m.logger, prefix: prefix, level: levelInfo, enabled: opts.Verbose}
		stderr = &logWriter{logger: m.logger, prefix: prefix, level: levelError, enabled: true}
		cmd.Stdout = io.Writer(stdout)
		cmd.Stderr = io.Writer(stderr)

		if v, ok := ports.VertexFromContext(ctx); ok {
			cmd.Stdout = io.MultiWriter(stdout, v.Stdout())
			cmd.Stderr = io.MultiWriter(stderr, v.Stderr())
		}
	}

	err := cmd.Run()
	if stdout != nil {
		stdout.Flush()
		stderr.Flush()
	}
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &domain.CommandError{
		Package:     opts.Package,
		CommandLine: m.CommandLine(command, args),
		ExitCode:    exitCode,
		Err:         zerr.With(zerr.Wrap(err, "command failed"), "dir", dir),
	}
}

type level int

const (
	levelInfo level = iota
	levelError
)

// logWriter forwards complete lines to the logger and keeps partial ones
// until the next write or Flush.
type logWriter struct {
	logger  ports.Logger
	prefix  string
	level   level
	enabled bool

	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// incomplete line goes back for the next write
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(strings.TrimRight(w.buf.String(), "\r\n"))
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	if !w.enabled || line == "" {
		return
	}
	if w.level == levelInfo {
		w.logger.Info(w.prefix + line)
		return
	}
	w.logger.Error(zerr.New(w.prefix + line))
}
