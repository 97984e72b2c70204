// Package main is the entry point for the crate CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/cmd/crate/commands"
	"go.trai.ch/crate/internal/adapters/config"
	"go.trai.ch/crate/internal/adapters/logger"
	"go.trai.ch/crate/internal/app"
	"go.trai.ch/crate/internal/core/domain"
	_ "go.trai.ch/crate/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// Tool settings adjust presentation only; a malformed file falls back
	// to defaults with a warning.
	settings, err := config.LoadSettings(".")
	if err != nil {
		components.Logger.Warn(err.Error())
	}
	cli.SetProgressMode(settings.Progress)
	if lg, ok := components.Logger.(*logger.Logger); ok {
		lg.SetLevel(logger.ParseLevel(settings.LogLevel))
	}

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrBuildFailed) || errors.Is(err, domain.ErrAborted) {
			components.Logger.Error(err)
			return 1
		}
		// zerr prints a full error report with stack trace and metadata via %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
