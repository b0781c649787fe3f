// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/casset/internal/adapters/cache"
	_ "go.trai.ch/casset/internal/adapters/config"
	_ "go.trai.ch/casset/internal/adapters/cssuri"
	_ "go.trai.ch/casset/internal/adapters/fs"
	_ "go.trai.ch/casset/internal/adapters/html"
	_ "go.trai.ch/casset/internal/adapters/logger"
	_ "go.trai.ch/casset/internal/adapters/minify"
	_ "go.trai.ch/casset/internal/adapters/publish"
	_ "go.trai.ch/casset/internal/adapters/remote"
	_ "go.trai.ch/casset/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/casset/internal/app"
	_ "go.trai.ch/casset/internal/engine/combiner"
	_ "go.trai.ch/casset/internal/engine/pipeline"
)
