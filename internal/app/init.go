package app

import (
	"context"

	"go.trai.ch/mono/internal/core/domain"
)

// rootScripts are the lifecycle scripts Init adds to the root manifest.
var rootScripts = [][2]string{
	{"postinstall", "mono install -v && mono run build -v"},
	{"test", "mono run test -v"},
	{"version", "mono version -v && git add -A"},
	{"postversion", "git push --follow-tags"},
}

// Init adds the lifecycle scripts driving mono to the root manifest. Other
// scripts are kept.
func (a *App) Init(_ context.Context) error {
	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}

	return a.editManifest(ws.ManifestPath(), func(doc *domain.Document) {
		scripts := doc.EnsureObject("scripts")
		for _, s := range rootScripts {
			scripts.Set(s[0], s[1])
		}
	})
}
