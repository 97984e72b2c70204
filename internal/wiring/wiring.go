// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crate/internal/adapters/archive"
	_ "go.trai.ch/crate/internal/adapters/config"
	_ "go.trai.ch/crate/internal/adapters/inspect"
	_ "go.trai.ch/crate/internal/adapters/logger"
	_ "go.trai.ch/crate/internal/adapters/pm"
	_ "go.trai.ch/crate/internal/adapters/shell"
	_ "go.trai.ch/crate/internal/adapters/telemetry"
	_ "go.trai.ch/crate/internal/adapters/validate"
	// Register app nodes.
	_ "go.trai.ch/crate/internal/app"
)
