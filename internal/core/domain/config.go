package domain

import "slices"

// CompressionFormat selects the archive strategy for the produced artifact.
type CompressionFormat string

const (
	// FormatZip is streaming entry-by-entry zip compression.
	FormatZip CompressionFormat = "zip"
	// FormatTarGz is a tar materialized first, then gzipped.
	FormatTarGz CompressionFormat = "tar_gz"
	// FormatTar is an uncompressed tar.
	FormatTar CompressionFormat = "tar"
)

// ParseCompressionFormat validates a format string. The boolean is false for
// anything outside the three supported values.
func ParseCompressionFormat(s string) (CompressionFormat, bool) {
	switch CompressionFormat(s) {
	case FormatZip, FormatTarGz, FormatTar:
		return CompressionFormat(s), true
	default:
		return "", false
	}
}

// Extension returns the artifact filename extension for the format.
func (f CompressionFormat) Extension() string {
	switch f {
	case FormatTarGz:
		return ".tar.gz"
	case FormatTar:
		return ".tar"
	default:
		return ".zip"
	}
}

// BuildConfig is the effective per-run configuration. One instance is merged
// from the built-in defaults for the detected project type and the optional
// project-local override file.
type BuildConfig struct {
	BuildCommand      string            `json:"buildCommand,omitempty"`
	OutputDir         string            `json:"outputDir,omitempty"`
	EnvironmentVars   []string          `json:"environmentVars,omitempty"`
	SuccessIndicators []string          `json:"successIndicators,omitempty"`
	PreBuildCommands  []string          `json:"preBuildCommands,omitempty"`
	PostBuildCommands []string          `json:"postBuildCommands,omitempty"`
	Exclude           []string          `json:"exclude,omitempty"`
	Include           []string          `json:"include,omitempty"`
	CompressionFormat CompressionFormat `json:"compressionFormat,omitempty"`

	// Shell opts the build and hook commands into interpreter execution.
	// Commands containing shell control operators are rejected without it.
	Shell bool `json:"shell,omitempty"`
}

// Merge combines an override into the receiver and returns the effective
// config. Scalar fields from the override win when set. EnvironmentVars and
// SuccessIndicators are unioned and de-duplicated, defaults first. Exclude
// and Include are replaced wholesale when the override supplies them, even
// as empty lists. PreBuildCommands and PostBuildCommands are ordered and
// replaced when supplied.
func (c BuildConfig) Merge(o BuildConfig) BuildConfig {
	out := c

	if o.BuildCommand != "" {
		out.BuildCommand = o.BuildCommand
	}
	if o.OutputDir != "" {
		out.OutputDir = o.OutputDir
	}
	if o.CompressionFormat != "" {
		out.CompressionFormat = o.CompressionFormat
	}
	if o.Shell {
		out.Shell = true
	}

	out.EnvironmentVars = unionStrings(c.EnvironmentVars, o.EnvironmentVars)
	out.SuccessIndicators = unionStrings(c.SuccessIndicators, o.SuccessIndicators)

	if o.PreBuildCommands != nil {
		out.PreBuildCommands = o.PreBuildCommands
	}
	if o.PostBuildCommands != nil {
		out.PostBuildCommands = o.PostBuildCommands
	}
	if o.Exclude != nil {
		out.Exclude = o.Exclude
	}
	if o.Include != nil {
		out.Include = o.Include
	}

	return out
}

// unionStrings appends the entries of b that are not already present in a,
// preserving first-seen order.
func unionStrings(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	out := slices.Clone(a)
	for _, s := range b {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
