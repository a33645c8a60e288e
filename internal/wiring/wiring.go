// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/extbuild/internal/adapters/artifact"
	_ "go.trai.ch/extbuild/internal/adapters/cas"
	_ "go.trai.ch/extbuild/internal/adapters/config"
	_ "go.trai.ch/extbuild/internal/adapters/environment"
	_ "go.trai.ch/extbuild/internal/adapters/fs"
	_ "go.trai.ch/extbuild/internal/adapters/logger"
	_ "go.trai.ch/extbuild/internal/adapters/msvc"
	_ "go.trai.ch/extbuild/internal/adapters/python"
	_ "go.trai.ch/extbuild/internal/adapters/shell"
	_ "go.trai.ch/extbuild/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/extbuild/internal/adapters/toolcheck"
	_ "go.trai.ch/extbuild/internal/adapters/watcher"
	_ "go.trai.ch/extbuild/internal/adapters/wsl"
	// Register app and engine nodes.
	_ "go.trai.ch/extbuild/internal/app"
	_ "go.trai.ch/extbuild/internal/engine/configure"
	_ "go.trai.ch/extbuild/internal/engine/pipeline"
)
