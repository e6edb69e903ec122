// Package logger implements a logging adapter using log/slog backed by a
// charmbracelet/log handler.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu      sync.RWMutex
	handler *log.Logger
	logger  *slog.Logger
}

// New creates a new Logger writing to stderr at info level.
func New() *Logger {
	l := &Logger{}
	l.SetOutput(os.Stderr)
	return l
}

// SetOutput updates the logger's output destination, keeping the current level.
func (l *Logger) SetOutput(w io.Writer) {
	level := log.InfoLevel
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handler != nil {
		level = l.handler.GetLevel()
	}
	l.handler = log.NewWithOptions(w, log.Options{Level: level})
	l.logger = slog.New(l.handler)
}

// SetVerbose switches debug messages on or off.
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if verbose {
		l.handler.SetLevel(log.DebugLevel)
		return
	}
	l.handler.SetLevel(log.InfoLevel)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with the metadata attached along its chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	zerr.Log(context.Background(), l.logger, err)
}
