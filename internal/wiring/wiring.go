// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mono/internal/adapters/catalog"
	_ "go.trai.ch/mono/internal/adapters/config"
	_ "go.trai.ch/mono/internal/adapters/fs"
	_ "go.trai.ch/mono/internal/adapters/graphviz"
	_ "go.trai.ch/mono/internal/adapters/jsonstore"
	_ "go.trai.ch/mono/internal/adapters/linker"
	_ "go.trai.ch/mono/internal/adapters/logger"
	_ "go.trai.ch/mono/internal/adapters/npm"
	_ "go.trai.ch/mono/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/mono/internal/app"
	_ "go.trai.ch/mono/internal/engine/pipeline"
)
