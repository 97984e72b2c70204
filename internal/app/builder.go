package app

import "go.trai.ch/crate/internal/core/ports"

// Components bundles the initialized application with the collaborators
// the CLI layer needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
	Sink   ports.ProgressSink
}
