package app

import (
	"time"

	"go.trai.ch/crate/internal/core/domain"
)

// Decider resolves a caller decision point. Returning false aborts the
// pipeline at that point. The CLI wires this to interactive confirmation
// or to flags; tests wire it to constants.
type Decider func(cond domain.Condition, detail string) bool

// AbortAll is the default Decider: every decision point aborts.
func AbortAll(_ domain.Condition, _ string) bool { return false }

// ContinueAll accepts every decision point.
func ContinueAll(_ domain.Condition, _ string) bool { return true }

// RunOptions configures one pipeline run.
type RunOptions struct {
	// SkipBuild archives without running the build step.
	SkipBuild bool
	// OutputPath overrides the artifact location. Empty derives
	// "<root>/<project>.<ext>" from the project name and format.
	OutputPath string
	// Timeout bounds the build phase; zero leaves builds unbounded.
	Timeout time.Duration
	// Decide resolves decision points; nil aborts on all of them.
	Decide Decider
	// Upload sends the finished artifact through the upload collaborator,
	// when one is configured.
	Upload bool
}

// Report is the structured result of a pipeline run. Translating it to a
// process exit code is the CLI's concern.
type Report struct {
	State          domain.PipelineState
	Project        domain.ProjectInfo
	PackageManager domain.PackageManagerKind
	Config         domain.BuildConfig
	Build          *domain.BuildResult
	Validation     *domain.ValidationReport
	Artifact       *domain.Artifact
	// Messages collects validation and warning text surfaced to the caller.
	Messages []string
}
