// Package app implements the packaging pipeline orchestrator.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

// App sequences the packaging pipeline: inspect, resolve config, build,
// validate, archive. Failure policy follows the pipeline state machine;
// build failures are surfaced to the caller, never silently discarded.
type App struct {
	inspector ports.Inspector
	pms       ports.PackageManagers
	resolver  ports.ConfigResolver
	runner    ports.BuildRunner
	validator ports.OutputValidator
	archiver  ports.Archiver
	logger    ports.Logger
	sink      ports.ProgressSink

	uploader ports.Uploader
}

// New creates a new App instance.
func New(
	inspector ports.Inspector,
	pms ports.PackageManagers,
	resolver ports.ConfigResolver,
	runner ports.BuildRunner,
	validator ports.OutputValidator,
	archiver ports.Archiver,
	logger ports.Logger,
	sink ports.ProgressSink,
) *App {
	return &App{
		inspector: inspector,
		pms:       pms,
		resolver:  resolver,
		runner:    runner,
		validator: validator,
		archiver:  archiver,
		logger:    logger,
		sink:      sink,
	}
}

// WithUploader attaches the optional upload collaborator.
func (a *App) WithUploader(u ports.Uploader) *App {
	a.uploader = u
	return a
}

// WithSink replaces the progress sink, e.g. when the CLI selects a richer
// renderer for interactive terminals.
func (a *App) WithSink(s ports.ProgressSink) *App {
	a.sink = s
	return a
}

// Detect inspects the project at root and resolves its effective build
// configuration without running anything. The returned report carries any
// validation findings in Messages.
func (a *App) Detect(root string) (*Report, error) {
	report := &Report{State: domain.StateIdle}

	a.advance(report, domain.StateInspecting)
	report.Project = a.inspector.Inspect(root)
	report.PackageManager = a.pms.Detect(root)

	cfg, err := a.resolver.Resolve(report.Project, report.PackageManager)
	if err != nil {
		report.State = domain.StateFailed
		return report, zerr.Wrap(err, "failed to resolve build configuration")
	}
	report.Config = cfg
	report.Messages = a.resolver.Validate(root, cfg)
	a.advance(report, domain.StateConfigResolved)

	return report, nil
}

// Build runs the pipeline up to and including output validation: inspect,
// resolve, execute the build, check its output. Archiving is Run's concern.
func (a *App) Build(ctx context.Context, root string, opts RunOptions) (*Report, error) {
	decide := opts.Decide
	if decide == nil {
		decide = AbortAll
	}

	report, err := a.Detect(root)
	if err != nil {
		return report, err
	}

	skipBuild := opts.SkipBuild

	// An unresolvable build command is a distinct condition, not a hard
	// validation failure: the caller may archive without a build step.
	if report.Config.BuildCommand == "" && !skipBuild {
		if !decide(domain.ConditionNoBuildCommand, "no build command could be resolved for this project") {
			report.State = domain.StateFailed
			return report, domain.ErrNoBuildCommand
		}
		skipBuild = true
	}
	if skipBuild {
		report.Messages = slices.DeleteFunc(report.Messages, func(m string) bool {
			return m == domain.MsgNoBuildCommand
		})
	}
	if len(report.Messages) > 0 {
		for _, m := range report.Messages {
			a.logger.Warn(m)
		}
		report.State = domain.StateFailed
		return report, zerr.With(domain.ErrConfigInvalid, "problems", len(report.Messages))
	}

	if skipBuild {
		return report, nil
	}

	if err := a.build(ctx, root, opts, decide, report); err != nil {
		report.State = domain.StateFailed
		return report, err
	}
	return report, nil
}

// Run executes the full pipeline for the project at root and returns a
// structured report alongside any terminal error.
func (a *App) Run(ctx context.Context, root string, opts RunOptions) (*Report, error) {
	report, err := a.Build(ctx, root, opts)
	if err != nil {
		return report, err
	}

	a.advance(report, domain.StateArchiving)
	artifact, err := a.archiver.Build(ctx, a.plan(root, report.Config, report.Project, opts.OutputPath), a.sink)
	if err != nil {
		report.State = domain.StateFailed
		return report, err
	}
	report.Artifact = &artifact
	a.logger.Info(fmt.Sprintf("artifact written to %s (%d entries, %d bytes)", artifact.Path, artifact.Entries, artifact.Size))

	if opts.Upload && a.uploader != nil {
		if err := a.uploader.Upload(ctx, artifact.Path); err != nil {
			report.State = domain.StateFailed
			return report, zerr.Wrap(err, "failed to upload artifact")
		}
	}

	a.advance(report, domain.StateDone)
	return report, nil
}

// InitConfig writes a seed override file for the project at root.
func (a *App) InitConfig(root string, overwrite bool) (string, error) {
	info := a.inspector.Inspect(root)
	kind := a.pms.Detect(root)
	return a.resolver.WriteDefault(root, info.Type, kind, overwrite)
}

// build runs the Building and Validating states.
func (a *App) build(ctx context.Context, root string, opts RunOptions, decide Decider, report *Report) error {
	a.advance(report, domain.StateBuilding)
	cfg := report.Config

	buildCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		buildCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	res, err := a.runner.Execute(buildCtx, root, cfg, a.sink)
	report.Build = &res
	if err != nil {
		// Hook failures carry their phase; report them distinctly from a
		// failed build command.
		var phaseErr *domain.PhaseError
		if errors.As(err, &phaseErr) {
			return zerr.With(zerr.With(domain.ErrBuildFailed, "phase", string(phaseErr.Phase)), "command", phaseErr.Command)
		}
		return zerr.Wrap(err, "build execution failed")
	}

	a.advance(report, domain.StateValidating)
	rep := a.validator.Validate(root, report.Project.Type, cfg, res.CombinedOutput)
	report.Validation = &rep
	report.Messages = append(report.Messages, rep.Messages...)

	if !res.Success {
		for _, m := range rep.Messages {
			a.logger.Warn(m)
		}
		detail := fmt.Sprintf("build command %q exited unsuccessfully", res.CommandUsed)
		if !decide(domain.ConditionBuildFailed, detail) {
			return zerr.With(domain.ErrBuildFailed, "command", res.CommandUsed)
		}
		a.logger.Warn("continuing to archive despite build failure")
		return nil
	}

	// Heuristic output findings on a successful build are warnings only.
	for _, m := range rep.Messages {
		a.logger.Warn(m)
	}

	if cfg.OutputDir != "" {
		if _, err := os.Stat(filepath.Join(root, cfg.OutputDir)); err != nil {
			detail := fmt.Sprintf("declared output directory %q missing after build", cfg.OutputDir)
			if !decide(domain.ConditionOutputDirMissing, detail) {
				return zerr.With(domain.ErrAborted, "output_dir", cfg.OutputDir)
			}
			a.logger.Warn(detail)
		}
	}

	return nil
}

// plan resolves the archive plan: the caller's output path when given,
// otherwise the project name (or directory base) with the format's
// extension, placed inside the project root.
func (a *App) plan(root string, cfg domain.BuildConfig, info domain.ProjectInfo, outputPath string) domain.ArchivePlan {
	format := cfg.CompressionFormat
	if _, ok := domain.ParseCompressionFormat(string(format)); !ok {
		format = domain.FormatZip
	}

	if outputPath == "" {
		name := info.Name()
		if name == "" {
			name = filepath.Base(root)
		}
		outputPath = filepath.Join(root, name+format.Extension())
	}

	return domain.ArchivePlan{
		Root:       root,
		Format:     format,
		Excludes:   cfg.Exclude,
		Includes:   cfg.Include,
		OutputPath: outputPath,
	}
}

// advance moves the report to the next state, guarding against illegal
// transitions.
func (a *App) advance(report *Report, next domain.PipelineState) {
	if !report.State.CanTransition(next) {
		a.logger.Warn(fmt.Sprintf("illegal pipeline transition %s -> %s", report.State, next))
	}
	report.State = next
}
