package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crate/internal/adapters/archive"   //nolint:depguard // Wired in app layer
	"go.trai.ch/crate/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/crate/internal/adapters/inspect"   //nolint:depguard // Wired in app layer
	"go.trai.ch/crate/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/crate/internal/adapters/pm"        //nolint:depguard // Wired in app layer
	"go.trai.ch/crate/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/crate/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/crate/internal/adapters/validate"  //nolint:depguard // Wired in app layer
	"go.trai.ch/crate/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			inspect.NodeID,
			pm.NodeID,
			config.NodeID,
			shell.NodeID,
			validate.NodeID,
			archive.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	inspector, err := graft.Dep[ports.Inspector](ctx)
	if err != nil {
		return nil, err
	}

	pms, err := graft.Dep[ports.PackageManagers](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.ConfigResolver](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.BuildRunner](ctx)
	if err != nil {
		return nil, err
	}

	validator, err := graft.Dep[ports.OutputValidator](ctx)
	if err != nil {
		return nil, err
	}

	archiver, err := graft.Dep[ports.Archiver](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[ports.ProgressSink](ctx)
	if err != nil {
		return nil, err
	}

	return New(inspector, pms, resolver, runner, validator, archiver, log, sink), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[ports.ProgressSink](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Sink:   sink,
	}, nil
}
