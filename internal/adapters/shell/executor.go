// Package shell provides the build executor adapter. It spawns the resolved
// build sequence as subprocesses, draining output concurrently while the
// pipeline waits for exit.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildRunner = (*Runner)(nil)

// outputChunkSize is the read size for streaming subprocess output.
const outputChunkSize = 4096

// Runner implements ports.BuildRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Execute runs the build sequence. Pre-build hooks run first, strictly in
// order; the first non-zero exit aborts the whole execution with a
// *domain.PhaseError. The build command itself streams stdout/stderr chunks
// to the sink while both are concatenated in arrival order into the
// combined output. Post-build hooks run only after a successful build and
// degrade success on failure without discarding the captured output.
func (r *Runner) Execute(ctx context.Context, root string, cfg domain.BuildConfig, sink ports.ProgressSink) (domain.BuildResult, error) {
	result := domain.BuildResult{CommandUsed: cfg.BuildCommand}

	if cfg.BuildCommand == "" {
		return result, domain.ErrNoBuildCommand
	}

	env := resolveEnvironment(os.Environ(), cfg.EnvironmentVars)

	if err := r.runHooks(ctx, domain.PhasePreBuild, cfg.PreBuildCommands, root, env, cfg.Shell, sink); err != nil {
		return result, err
	}

	result = r.runBuild(ctx, root, cfg, env, sink)

	if result.Success {
		if err := r.runHooks(ctx, domain.PhasePostBuild, cfg.PostBuildCommands, root, env, cfg.Shell, sink); err != nil {
			result.Success = false
			return result, err
		}
	}

	return result, nil
}

// runBuild spawns the build command and drains its output. A command that
// cannot be spawned yields a failed result carrying the spawn error text,
// with no exit code.
func (r *Runner) runBuild(ctx context.Context, root string, cfg domain.BuildConfig, env []string, sink ports.ProgressSink) domain.BuildResult {
	result := domain.BuildResult{CommandUsed: cfg.BuildCommand}
	sink.BuildEvent(domain.BuildProgressEvent{Phase: domain.PhaseBuild, Kind: domain.BuildEventRunning})
	defer sink.BuildEvent(domain.BuildProgressEvent{Phase: domain.PhaseBuild, Kind: domain.BuildEventComplete})

	argv, err := argvFor(cfg.BuildCommand, cfg.Shell)
	if err != nil {
		result.CombinedOutput = err.Error()
		return result
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Dir = root
	cmd.Env = env

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		result.CombinedOutput = err.Error()
		return result
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		result.CombinedOutput = err.Error()
		return result
	}

	if err := cmd.Start(); err != nil {
		result.CombinedOutput = err.Error()
		return result
	}

	var combined combinedBuffer

	// Both streams must be drained while waiting for the subprocess, or a
	// full pipe buffer stalls the build.
	var eg errgroup.Group
	eg.Go(func() error {
		return drain(stdout, &combined, func(chunk string) {
			sink.BuildEvent(domain.BuildProgressEvent{Phase: domain.PhaseBuild, Kind: domain.BuildEventOutputChunk, Chunk: chunk})
		})
	})
	eg.Go(func() error {
		return drain(stderr, &combined, func(chunk string) {
			sink.BuildEvent(domain.BuildProgressEvent{Phase: domain.PhaseBuild, Kind: domain.BuildEventErrorChunk, Chunk: chunk})
		})
	})

	drainErr := eg.Wait()
	waitErr := cmd.Wait()

	result.CombinedOutput = combined.String()

	exitCode := 0
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}
	result.ExitCode = &exitCode
	result.Success = waitErr == nil && exitCode == 0

	if drainErr != nil {
		r.logger.Warn("output stream closed early: " + drainErr.Error())
	}

	return result
}

// runHooks executes phase commands sequentially, each awaited to completion.
// The first failure aborts the remaining queued commands and is returned as
// a *domain.PhaseError so callers can attribute it to the hook phase.
func (r *Runner) runHooks(ctx context.Context, phase domain.BuildPhase, cmds []string, root string, env []string, useShell bool, sink ports.ProgressSink) error {
	if len(cmds) == 0 {
		return nil
	}

	sink.BuildEvent(domain.BuildProgressEvent{Phase: phase, Kind: domain.BuildEventRunning})

	for _, command := range cmds {
		argv, err := argvFor(command, useShell)
		if err != nil {
			return &domain.PhaseError{Phase: phase, Command: command, Err: err}
		}

		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
		cmd.Dir = root
		cmd.Env = env
		// Hooks inherit the pipeline's standard streams.
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			return &domain.PhaseError{Phase: phase, Command: command, Err: err}
		}
	}

	sink.BuildEvent(domain.BuildProgressEvent{Phase: phase, Kind: domain.BuildEventComplete})
	return nil
}

// drain reads chunks from a stream until EOF, forwarding each to the sink
// callback and the shared combined buffer in arrival order.
func drain(r io.Reader, combined *combinedBuffer, forward func(string)) error {
	buf := make([]byte, outputChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := string(buf[:n])
			combined.Append(chunk)
			forward(chunk)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return zerr.Wrap(err, "failed to read subprocess output")
		}
	}
}

// combinedBuffer concatenates chunks from both streams in arrival order.
type combinedBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *combinedBuffer) Append(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sb.WriteString(s)
}

func (b *combinedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

// resolveEnvironment merges the configured environment entries over the
// inherited environment. "KEY=VALUE" entries are set or overridden; bare
// names are copied from the parent environment when present.
func resolveEnvironment(sysEnv, configured []string) []string {
	envMap := make(map[string]string, len(sysEnv))
	order := make([]string, 0, len(sysEnv)+len(configured))

	set := func(k, v string) {
		if _, exists := envMap[k]; !exists {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for _, entry := range configured {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
			continue
		}
		if v, ok := os.LookupEnv(entry); ok {
			set(entry, v)
		}
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
