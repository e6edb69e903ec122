package npm_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mono/internal/adapters/npm"
	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/mono/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fakeManager writes a shell script standing in for the package manager.
func fakeManager(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "fakepm")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o700))
	return path
}

func TestManager_CommandLine(t *testing.T) {
	m := npm.NewManager(nil, "")
	assert.Equal(t, "npm install lodash --save --foreground-scripts",
		m.CommandLine("install", []string{"lodash", "--save", "--foreground-scripts"}))
	assert.Equal(t, "npm publish", m.CommandLine("publish", nil))
}

func TestManager_Invoke_VerboseOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Info("[@s/pkg1] install"),
		mockLogger.EXPECT().Info("[@s/pkg1] --foreground-scripts"),
	)

	m := npm.NewManager(mockLogger, fakeManager(t, `for a in "$@"; do echo "$a"; done`))
	err := m.Invoke(context.Background(), t.TempDir(), "install", []string{"--foreground-scripts"},
		ports.InvokeOptions{Package: "@s/pkg1", Verbose: true})
	require.NoError(t, err)
}

func TestManager_Invoke_QuietHidesStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(0)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	m := npm.NewManager(mockLogger, fakeManager(t, "echo out; echo warn >&2"))
	err := m.Invoke(context.Background(), t.TempDir(), "install", nil, ports.InvokeOptions{Package: "a"})
	require.NoError(t, err)
}

func TestManager_Invoke_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("part1part2").Times(1)
	mockLogger.EXPECT().Info("tail").Times(1)

	m := npm.NewManager(mockLogger, fakeManager(t, "printf part1; sleep 0.1; echo part2; printf tail"))
	err := m.Invoke(context.Background(), t.TempDir(), "run", nil, ports.InvokeOptions{Verbose: true})
	require.NoError(t, err)
}

func TestManager_Invoke_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	mockLogger.EXPECT().Info(resolved).Times(1)

	m := npm.NewManager(mockLogger, fakeManager(t, "pwd -P"))
	require.NoError(t, m.Invoke(context.Background(), dir, "install", nil, ports.InvokeOptions{Verbose: true}))
}

func TestManager_Invoke_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	exe := fakeManager(t, "echo boom >&2; exit 3")
	m := npm.NewManager(mockLogger, exe)
	err := m.Invoke(context.Background(), t.TempDir(), "install", []string{"--foreground-scripts"},
		ports.InvokeOptions{Package: "@s/pkg2"})
	require.Error(t, err)

	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "@s/pkg2", cmdErr.Package)
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Equal(t, exe+" install --foreground-scripts", cmdErr.CommandLine)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestManager_Invoke_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := npm.NewManager(mocks.NewMockLogger(ctrl), "nonexistent-package-manager-xyz123")

	err := m.Invoke(context.Background(), t.TempDir(), "install", nil, ports.InvokeOptions{})

	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, -1, cmdErr.ExitCode)
}

func TestManager_Invoke_WithVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	var stdoutBuf, stderrBuf bytes.Buffer
	mockVertex := mocks.NewMockVertex(ctrl)
	mockVertex.EXPECT().Stdout().Return(&stdoutBuf).AnyTimes()
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	ctx := ports.ContextWithVertex(context.Background(), mockVertex)
	m := npm.NewManager(mockLogger, fakeManager(t, "echo hello to stdout; echo hello to stderr >&2"))
	require.NoError(t, m.Invoke(ctx, t.TempDir(), "install", nil, ports.InvokeOptions{Package: "a"}))

	assert.Contains(t, stdoutBuf.String(), "hello to stdout")
	assert.Contains(t, stderrBuf.String(), "hello to stderr")
}
