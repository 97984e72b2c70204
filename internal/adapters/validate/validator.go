// Package validate implements the build output validator adapter. It is a
// heuristic signal layered over exit-code-based success, never a
// replacement for it.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

var _ ports.OutputValidator = (*Validator)(nil)

// Validator implements ports.OutputValidator.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate scans output line-by-line against the fixed signature table.
// For each matching pattern only the first matching line is recorded, to
// avoid duplicate noise. It then checks the configured success indicators
// on disk; a missing indicator is recorded as a message. Success is true
// iff no messages were collected.
func (v *Validator) Validate(root string, t domain.ProjectType, cfg domain.BuildConfig, output string) domain.ValidationReport {
	var msgs []string

	lines := strings.Split(output, "\n")
	for _, sig := range signatures {
		if !sig.appliesTo(t) {
			continue
		}
		for _, line := range lines {
			if sig.re.MatchString(line) {
				msgs = append(msgs, fmt.Sprintf("%s: %s", sig.name, strings.TrimSpace(line)))
				break
			}
		}
	}

	for _, indicator := range cfg.SuccessIndicators {
		if _, err := os.Stat(filepath.Join(root, indicator)); err != nil {
			msgs = append(msgs, fmt.Sprintf("expected build output %q not found", indicator))
		}
	}

	return domain.ValidationReport{
		Success:  len(msgs) == 0,
		Messages: msgs,
	}
}
