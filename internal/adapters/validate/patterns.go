package validate

import (
	"regexp"

	"go.trai.ch/crate/internal/core/domain"
)

// signature is one failure marker scanned for in build output.
type signature struct {
	name string
	re   *regexp.Regexp
	// only restricts the signature to specific project types; empty means
	// it applies to all.
	only []domain.ProjectType
}

func (s signature) appliesTo(t domain.ProjectType) bool {
	if len(s.only) == 0 {
		return true
	}
	for _, candidate := range s.only {
		if candidate == t {
			return true
		}
	}
	return false
}

// signatures is the fixed, ordered table of case-insensitive failure
// markers: generic ones first, then project-type-specific ones.
var signatures = []signature{
	{name: "error", re: regexp.MustCompile(`(?i)\berror\b`)},
	{name: "failed", re: regexp.MustCompile(`(?i)\bfailed\b`)},
	{name: "exception", re: regexp.MustCompile(`(?i)\bexception\b`)},
	{name: "cannot find module", re: regexp.MustCompile(`(?i)cannot find module`)},
	{name: "not found", re: regexp.MustCompile(`(?i)not found`)},
	{
		name: "next.js compile failure",
		re:   regexp.MustCompile(`(?i)failed to compile`),
		only: []domain.ProjectType{domain.ProjectTypeNext},
	},
	{
		name: "next.js build error",
		re:   regexp.MustCompile(`(?i)build error occurred`),
		only: []domain.ProjectType{domain.ProjectTypeNext},
	},
}
