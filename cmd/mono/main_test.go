package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mono/internal/app"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setup        func(dir string)
		args         []string
		expectedExit int
		expectedOut  string
	}{
		{
			name: "List packages",
			setup: func(dir string) {
				writeFile(t, filepath.Join(dir, "package.json"), `{"name": "root", "version": "1.0.0"}`)
				writeFile(t, filepath.Join(dir, "packages", "b", "package.json"),
					`{"name": "b", "version": "1.0.0", "dependencies": {"a": "^1.0.0"}}`)
				writeFile(t, filepath.Join(dir, "packages", "a", "package.json"), `{"name": "a", "version": "1.0.0"}`)
			},
			args:         []string{"mono", "list"},
			expectedExit: 0,
			expectedOut:  "a@1.0.0\ta\nb@1.0.0\tb\n",
		},
		{
			name:         "Missing root manifest",
			setup:        func(string) {},
			args:         []string{"mono", "list"},
			expectedExit: 1,
		},
		{
			name: "Version conflict",
			setup: func(dir string) {
				writeFile(t, filepath.Join(dir, "package.json"), `{"name": "root", "version": "1.0.0"}`)
				writeFile(t, filepath.Join(dir, "packages", "a", "package.json"),
					`{"name": "a", "dependencies": {"lodash": "^4.0.0"}}`)
				writeFile(t, filepath.Join(dir, "packages", "b", "package.json"),
					`{"name": "b", "dependencies": {"lodash": "^3.0.0"}}`)
			},
			args:         []string{"mono", "validate", "--version-match"},
			expectedExit: 1,
		},
		{
			name: "Cycle",
			setup: func(dir string) {
				writeFile(t, filepath.Join(dir, "package.json"), `{"name": "root", "version": "1.0.0"}`)
				writeFile(t, filepath.Join(dir, "packages", "a", "package.json"),
					`{"name": "a", "dependencies": {"b": "^1.0.0"}}`)
				writeFile(t, filepath.Join(dir, "packages", "b", "package.json"),
					`{"name": "b", "dependencies": {"a": "^1.0.0"}}`)
			},
			args:         []string{"mono", "list"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setup(tmpDir)

			os.Args = tt.args

			var out bytes.Buffer
			exitCode := run(func(a *app.App) {
				a.WithDir(tmpDir).WithOutput(&out)
			})
			assert.Equal(t, tt.expectedExit, exitCode)
			if tt.expectedOut != "" {
				assert.Equal(t, tt.expectedOut, out.String())
			}
		})
	}
}
