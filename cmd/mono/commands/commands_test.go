package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mono/cmd/mono/commands"
	"go.trai.ch/mono/internal/adapters/telemetry"
	"go.trai.ch/mono/internal/app"
	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/mono/internal/core/ports/mocks"
	"go.trai.ch/mono/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type harness struct {
	workspaces *mocks.MockWorkspaceLoader
	catalogs   *mocks.MockCatalogLoader
	pm         *mocks.MockPackageManager
	out        *bytes.Buffer
	cli        *commands.CLI
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	h := &harness{
		workspaces: mocks.NewMockWorkspaceLoader(ctrl),
		catalogs:   mocks.NewMockCatalogLoader(ctrl),
		pm:         mocks.NewMockPackageManager(ctrl),
		out:        &bytes.Buffer{},
	}
	h.pm.EXPECT().CommandLine(gomock.Any(), gomock.Any()).Return("npm").AnyTimes()

	a := app.New(app.Dependencies{
		Workspaces: h.workspaces,
		Catalogs:   h.catalogs,
		Store:      mocks.NewMockManifestStore(ctrl),
		Manager:    h.pm,
		Linker:     mocks.NewMockLinker(ctrl),
		FS:         mocks.NewMockFileSystem(ctrl),
		Renderer:   mocks.NewMockGraphRenderer(ctrl),
		Logger:     log,
		Runner:     pipeline.NewRunner(telemetry.NewNoOp(), 1),
	}).WithDir("/ws").WithOutput(h.out)

	h.cli = commands.New(a)
	return h
}

// expectLoad serves a workspace with two packages, b depending on a.
func (h *harness) expectLoad() {
	root := domain.NewDocument()
	root.Set("version", "1.0.0")
	h.workspaces.EXPECT().Load("/ws").Return(&domain.Workspace{
		Root:        "/ws",
		PackagesDir: "/ws/packages",
		Manifest:    root,
		Settings:    domain.Settings{Parallelism: 1, PackageManager: "npm"},
	}, nil)

	a := domain.NewPackage("@s/a", "a", "1.0.0")
	a.Scripts["build"] = "tsc"
	b := domain.NewPackage("@s/b", "b", "1.0.0")
	b.Scripts["build"] = "tsc"
	b.Dependencies.Local.Ensure(domain.DependencyTypeProd).Set("@s/a", "^1.0.0")
	h.catalogs.EXPECT().Load("/ws/packages").Return(domain.Catalog{b, a}, nil)
}

func (h *harness) execute(args ...string) error {
	h.cli.SetArgs(args)
	return h.cli.Execute(context.Background())
}

func TestRun_PassesScriptArgs(t *testing.T) {
	h := newHarness(t)
	h.expectLoad()

	h.pm.EXPECT().Invoke(gomock.Any(), "/ws/packages/b", "run",
		[]string{"build", "--foreground-scripts", "--", "--watch"},
		ports.InvokeOptions{Package: "@s/b"}).Return(nil)

	require.NoError(t, h.execute("run", "build", "-p", "@s/b", "--", "--watch"))
}

func TestRun_Verbose(t *testing.T) {
	h := newHarness(t)
	h.expectLoad()

	gomock.InOrder(
		h.pm.EXPECT().Invoke(gomock.Any(), "/ws/packages/a", "run", gomock.Any(),
			ports.InvokeOptions{Package: "@s/a", Verbose: true}).Return(nil),
		h.pm.EXPECT().Invoke(gomock.Any(), "/ws/packages/b", "run", gomock.Any(),
			ports.InvokeOptions{Package: "@s/b", Verbose: true}).Return(nil),
	)

	require.NoError(t, h.execute("run", "build", "-v"))
}

func TestRun_RequiresScript(t *testing.T) {
	h := newHarness(t)
	assert.Error(t, h.execute("run"))
}

func TestInstall_SaveFlagsAreExclusive(t *testing.T) {
	h := newHarness(t)
	assert.Error(t, h.execute("install", "-d", "react", "--save", "--save-dev"))
}

func TestValidate_WithoutCheckPrintsHelp(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.execute("validate"))
}

func TestList_Reverse(t *testing.T) {
	h := newHarness(t)
	h.expectLoad()

	require.NoError(t, h.execute("list", "--reverse"))
	assert.Equal(t, "@s/b@1.0.0\tb\n@s/a@1.0.0\ta\n", h.out.String())
}

func TestCreate_RequiresDir(t *testing.T) {
	h := newHarness(t)
	assert.Error(t, h.execute("create"))
}

func TestRoot_VerboseShorthand(t *testing.T) {
	h := newHarness(t)
	h.expectLoad()

	require.NoError(t, h.execute("list", "-v"))
	assert.Equal(t, "@s/a@1.0.0\ta\n@s/b@1.0.0\tb\n", h.out.String())
}

func TestRoot_VersionAndHelp(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.execute("--version"))

	h = newHarness(t)
	require.NoError(t, h.execute("--help"))

	h = newHarness(t)
	require.NoError(t, h.execute("-v", "--help"))
}
