package domain

import "fmt"

// BuildPhase names a stage of the build sequence, used for error attribution.
type BuildPhase string

const (
	// PhasePreBuild covers the pre-build hook commands.
	PhasePreBuild BuildPhase = "pre_build"
	// PhaseBuild covers the build command itself.
	PhaseBuild BuildPhase = "build"
	// PhasePostBuild covers the post-build hook commands.
	PhasePostBuild BuildPhase = "post_build"
)

// BuildEventKind is the state component of a BuildProgressEvent.
type BuildEventKind string

const (
	// BuildEventRunning signals a phase has started.
	BuildEventRunning BuildEventKind = "running"
	// BuildEventOutputChunk carries a stdout chunk.
	BuildEventOutputChunk BuildEventKind = "output_chunk"
	// BuildEventErrorChunk carries a stderr chunk.
	BuildEventErrorChunk BuildEventKind = "error_chunk"
	// BuildEventComplete signals a phase has finished.
	BuildEventComplete BuildEventKind = "complete"
)

// BuildProgressEvent is one element of the ordered, non-restartable progress
// stream emitted during a build execution. Chunk is set only for the chunk
// kinds.
type BuildProgressEvent struct {
	Phase BuildPhase
	Kind  BuildEventKind
	Chunk string
}

// BuildResult records the outcome of one build execution. It is immutable
// after the subprocess terminates. ExitCode is nil when the command could
// not be spawned at all.
type BuildResult struct {
	Success        bool
	ExitCode       *int
	CombinedOutput string
	CommandUsed    string
}

// PhaseError is a subprocess failure attributed to a named build phase, so
// callers can report "this failed before/after the real build" distinctly
// from a build-command failure.
type PhaseError struct {
	Phase   BuildPhase
	Command string
	Err     error
}

// Error implements the error interface.
func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s command %q failed: %v", e.Phase, e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *PhaseError) Unwrap() error {
	return e.Err
}
