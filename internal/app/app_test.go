package app_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mono/internal/adapters/catalog"
	"go.trai.ch/mono/internal/adapters/config"
	"go.trai.ch/mono/internal/adapters/fs"
	"go.trai.ch/mono/internal/adapters/graphviz"
	"go.trai.ch/mono/internal/adapters/jsonstore"
	"go.trai.ch/mono/internal/adapters/telemetry"
	"go.trai.ch/mono/internal/app"
	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports/mocks"
	"go.trai.ch/mono/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

const (
	rootManifest = `{
  "name": "mono-root",
  "version": "1.0.1",
  "private": true
}
`
	pkg1Manifest = `{
  "name": "@s/pkg1",
  "version": "1.0.1",
  "scripts": {
    "build": "tsc"
  },
  "dependencies": {
    "lodash": "^4.17.21"
  }
}
`
	pkg2Manifest = `{
  "name": "@s/pkg2",
  "version": "1.0.1",
  "dependencies": {
    "@s/pkg1": "^1.0.1",
    "lodash": "^4.17.21"
  }
}
`
	pkg3Manifest = `{
  "name": "@s/pkg3",
  "version": "1.0.0",
  "scripts": {
    "build": "tsc"
  },
  "dependencies": {
    "@s/pkg2": "^1.0.1"
  },
  "devDependencies": {
    "@s/pkg1": "^1.0.1"
  }
}
`
	pkg4Manifest = `{
  "name": "@s/pkg4",
  "version": "1.0.1",
  "private": true
}
`
)

// fixture is a workspace in memory with a mocked package manager and linker.
type fixture struct {
	mem    afero.Fs
	pm     *mocks.MockPackageManager
	linker *mocks.MockLinker
	out    *bytes.Buffer
	app    *app.App
}

func defaultFiles() map[string]string {
	return map[string]string{
		"/ws/package.json":               rootManifest,
		"/ws/packages/pkg1/package.json": pkg1Manifest,
		"/ws/packages/pkg2/package.json": pkg2Manifest,
		"/ws/packages/pkg3/package.json": pkg3Manifest,
		"/ws/packages/pkg4/package.json": pkg4Manifest,
	}
}

func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()
	return newFixtureWithFs(t, files, nil)
}

// newFixtureWithFs lets wrap interpose on every filesystem access of the app.
// Fixture reads go to the underlying memory filesystem.
func newFixtureWithFs(t *testing.T, files map[string]string, wrap func(afero.Fs) afero.Fs) *fixture {
	t.Helper()

	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0o644))
	}
	appFs := mem
	if wrap != nil {
		appFs = wrap(mem)
	}

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	pm := mocks.NewMockPackageManager(ctrl)
	pm.EXPECT().CommandLine(gomock.Any(), gomock.Any()).DoAndReturn(func(command string, args []string) string {
		return strings.Join(append([]string{"npm", command}, args...), " ")
	}).AnyTimes()

	linker := mocks.NewMockLinker(ctrl)

	store := jsonstore.NewStore(appFs, fs.NewHasher(appFs))
	out := &bytes.Buffer{}
	a := app.New(app.Dependencies{
		Workspaces: config.NewLoader(appFs, store, log),
		Catalogs:   catalog.NewLoader(appFs, store, log),
		Store:      store,
		Manager:    pm,
		Linker:     linker,
		FS:         fs.NewFileSystem(appFs),
		Renderer:   graphviz.NewRenderer(),
		Logger:     log,
		Runner:     pipeline.NewRunner(telemetry.NewNoOp(), 2),
	}).WithDir("/ws").WithOutput(out)

	return &fixture{mem: mem, pm: pm, linker: linker, out: out, app: a}
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(f.mem, path)
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) manifest(t *testing.T, dir string) *domain.Document {
	t.Helper()
	doc, err := domain.ParseDocument([]byte(f.read(t, filepath.Join("/ws/packages", dir, "package.json"))))
	require.NoError(t, err)
	return doc
}

func (f *fixture) snapshot(t *testing.T) map[string]string {
	t.Helper()
	out := map[string]string{}
	for path := range defaultFiles() {
		out[path] = f.read(t, path)
	}
	return out
}

// recorder collects invocations made from concurrent pipelines.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, s)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// failWrites rejects writes to the listed paths.
type failWrites struct {
	afero.Fs
	paths []string
}

func (f failWrites) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 && slices.Contains(f.paths, filepath.Clean(name)) {
		return nil, &os.PathError{Op: "open", Path: name, Err: errors.New("read-only")}
	}
	return f.Fs.OpenFile(name, flag, perm)
}
