package domain

// MsgNoBuildCommand is the validation message for an unresolvable build
// command. The pipeline recognizes it to separate the "no build step"
// decision point from hard validation failures.
const MsgNoBuildCommand = "no build command configured and none could be resolved"

// ValidationReport is the heuristic outcome of scanning build output text
// against failure signatures. It supplements exit-code-based success and
// never overrides it.
type ValidationReport struct {
	Success  bool
	Messages []string
}
