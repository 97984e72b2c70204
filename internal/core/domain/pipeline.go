package domain

// PipelineState is one of the packaging pipeline's sequential states.
type PipelineState string

const (
	// StateIdle is the initial state before inspection starts.
	StateIdle PipelineState = "Idle"
	// StateInspecting covers project-type and package-manager detection.
	StateInspecting PipelineState = "Inspecting"
	// StateConfigResolved means the effective BuildConfig has been merged and validated.
	StateConfigResolved PipelineState = "ConfigResolved"
	// StateBuilding covers the build subprocess execution.
	StateBuilding PipelineState = "Building"
	// StateValidating covers output-text and success-indicator checks.
	StateValidating PipelineState = "Validating"
	// StateArchiving covers archive construction.
	StateArchiving PipelineState = "Archiving"
	// StateDone is the successful terminal state.
	StateDone PipelineState = "Done"
	// StateFailed is the failure terminal state, reachable from Building or Archiving.
	StateFailed PipelineState = "Failed"
)

// transitions is the legal state graph. Building and Validating may be
// skipped when no build command resolves and the caller chooses to continue.
var transitions = map[PipelineState][]PipelineState{
	StateIdle:           {StateInspecting},
	StateInspecting:     {StateConfigResolved},
	StateConfigResolved: {StateBuilding, StateArchiving, StateFailed},
	StateBuilding:       {StateValidating, StateFailed},
	StateValidating:     {StateArchiving, StateFailed},
	StateArchiving:      {StateDone, StateFailed},
}

// CanTransition reports whether moving from s to next is legal.
func (s PipelineState) CanTransition(next PipelineState) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s is Done or Failed.
func (s PipelineState) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// Condition names a caller decision point surfaced by the pipeline rather
// than resolved internally.
type Condition string

const (
	// ConditionNoBuildCommand: no build command resolvable and no override
	// exists; continuing archives the project without a build step.
	ConditionNoBuildCommand Condition = "no_build_command"
	// ConditionBuildFailed: the build command ran and failed; continuing
	// archives the tree despite the failure.
	ConditionBuildFailed Condition = "build_failed"
	// ConditionOutputDirMissing: the declared output directory does not
	// exist after a successful build.
	ConditionOutputDirMissing Condition = "output_dir_missing"
)
