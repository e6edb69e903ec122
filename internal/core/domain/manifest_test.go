package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mono/internal/core/domain"
)

func mustParse(t *testing.T, s string) *domain.Document {
	t.Helper()
	doc, err := domain.ParseDocument([]byte(s))
	require.NoError(t, err)
	return doc
}

func render(t *testing.T, doc *domain.Document) string {
	t.Helper()
	out, err := doc.Bytes()
	require.NoError(t, err)
	return string(out)
}

func TestPackageFromManifest(t *testing.T) {
	doc := mustParse(t, `{
  "name": "@s/pkg2",
  "version": "1.2.3",
  "private": true,
  "scripts": {"build": "tsc"},
  "dependencies": {"@s/pkg1": "^1.0.0", "lodash": "^4.0.0"},
  "devDependencies": {},
  "peerDependencies": {"react": "^18.0.0"}
}`)

	p := domain.PackageFromManifest("pkg2", doc)

	assert.Equal(t, "@s/pkg2", p.Name)
	assert.Equal(t, "pkg2", p.DirName)
	assert.Equal(t, "1.2.3", p.Version)
	assert.True(t, p.Private)
	assert.True(t, p.HasScript("build"))
	assert.False(t, p.HasScript("test"))
	assert.Empty(t, p.Dependencies.Local)
	assert.Equal(t, []string{"@s/pkg1", "lodash"}, p.Dependencies.External[domain.DependencyTypeProd].Names())
	assert.NotContains(t, p.Dependencies.External, domain.DependencyTypeDev)
	assert.Equal(t, []string{"react"}, p.Dependencies.External[domain.DependencyTypePeer].Names())
}

func TestStripAndInsertLocalDependencies_RoundTrip(t *testing.T) {
	const in = `{
  "name": "@s/pkg3",
  "dependencies": {
    "@s/pkg1": "^1.0.1",
    "lodash": "^4.17.21"
  },
  "devDependencies": {
    "@s/pkg2": "^1.0.1"
  }
}
`
	doc := mustParse(t, in)
	p := domain.PackageFromManifest("pkg3", doc)
	catalog := domain.Catalog{p, pkg("@s/pkg1"), pkg("@s/pkg2")}
	catalog.Classify()

	domain.StripLocalDependencies(doc, p)
	assert.Equal(t, `{
  "name": "@s/pkg3",
  "dependencies": {
    "lodash": "^4.17.21"
  },
  "devDependencies": {}
}
`, render(t, doc))

	domain.InsertLocalDependencies(doc, p)
	assert.Equal(t, `{
  "name": "@s/pkg3",
  "dependencies": {
    "lodash": "^4.17.21",
    "@s/pkg1": "^1.0.1"
  },
  "devDependencies": {
    "@s/pkg2": "^1.0.1"
  }
}
`, render(t, doc))
}

func TestInsertLocalDependencies_CreatesSection(t *testing.T) {
	doc := mustParse(t, `{"name": "app"}`)
	p := pkg("app")
	p.Dependencies.Local.Ensure(domain.DependencyTypePeer).Set("lib", "^1.0.0")

	domain.InsertLocalDependencies(doc, p)

	peers, ok := doc.Object("peerDependencies")
	require.True(t, ok)
	assert.Equal(t, "^1.0.0", peers.String("lib"))
	assert.False(t, doc.Has("dependencies"))
}

func TestApplyVersion(t *testing.T) {
	doc := mustParse(t, `{"name": "app", "version": "1.0.0", "dependencies": {"lib": "^1.0.0", "x": "1"}}`)
	p := pkg("app", "lib")
	domain.BumpVersion(domain.Catalog{p, pkg("lib")}, "2.0.0", nil)

	domain.ApplyVersion(doc, p)

	assert.Equal(t, "2.0.0", doc.String("version"))
	deps, _ := doc.Object("dependencies")
	assert.Equal(t, []string{"lib", "x"}, deps.Keys())
	assert.Equal(t, "^2.0.0", deps.String("lib"))
}

func TestPatchLockVersion(t *testing.T) {
	doc := mustParse(t, `{"name": "app", "version": "1.0.0", "lockfileVersion": 3, "packages": {"": {"name": "app", "version": "1.0.0"}, "node_modules/x": {"version": "9.9.9"}}}`)

	domain.PatchLockVersion(doc, "2.0.0")

	assert.Equal(t, "2.0.0", doc.String("version"))
	packages, _ := doc.Object("packages")
	root, _ := packages.Object("")
	assert.Equal(t, "2.0.0", root.String("version"))
	other, _ := packages.Object("node_modules/x")
	assert.Equal(t, "9.9.9", other.String("version"))

	legacy := mustParse(t, `{"name": "app", "version": "1.0.0", "lockfileVersion": 1}`)
	domain.PatchLockVersion(legacy, "2.0.0")
	assert.Equal(t, "2.0.0", legacy.String("version"))
	assert.False(t, legacy.Has("packages"))
}
