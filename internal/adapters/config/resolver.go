package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/crate/internal/adapters/shell"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigResolver = (*Resolver)(nil)

// Resolver implements ports.ConfigResolver.
type Resolver struct {
	pms ports.PackageManagers
}

// NewResolver creates a new Resolver.
func NewResolver(pms ports.PackageManagers) *Resolver {
	return &Resolver{pms: pms}
}

// Resolve merges the built-in defaults for the project type with the
// override file, if one exists. Override fields win field-by-field;
// list-valued fields follow the union/replace rules on domain.BuildConfig.
func (r *Resolver) Resolve(info domain.ProjectInfo, kind domain.PackageManagerKind) (domain.BuildConfig, error) {
	cfg := defaultsFor(info, kind, r.pms)

	override, ok, err := loadOverride(info.Root)
	if err != nil {
		return domain.BuildConfig{}, err
	}
	if ok {
		cfg = cfg.Merge(override)
	}

	return cfg, nil
}

// Validate checks the merged config. It returns human-readable messages;
// empty means valid. Checks: build command present, declared output
// directory exists on disk, compression format is legal, and shell control
// operators only appear with the explicit shell opt-in.
func (r *Resolver) Validate(root string, cfg domain.BuildConfig) []string {
	var msgs []string

	if cfg.BuildCommand == "" {
		msgs = append(msgs, domain.MsgNoBuildCommand)
	}

	if cfg.OutputDir != "" {
		info, err := os.Stat(filepath.Join(root, cfg.OutputDir))
		if err != nil || !info.IsDir() {
			msgs = append(msgs, fmt.Sprintf("declared output directory %q does not exist", cfg.OutputDir))
		}
	}

	if cfg.CompressionFormat != "" {
		if _, ok := domain.ParseCompressionFormat(string(cfg.CompressionFormat)); !ok {
			msgs = append(msgs, fmt.Sprintf("unsupported compression format %q (expected zip, tar_gz, or tar)", cfg.CompressionFormat))
		}
	}

	if !cfg.Shell {
		for _, cmd := range commandsOf(cfg) {
			if shell.UsesControlOperators(cmd) {
				msgs = append(msgs, fmt.Sprintf("command %q uses shell operators; set \"shell\": true to run it through an interpreter", cmd))
			}
		}
	}

	return msgs
}

func commandsOf(cfg domain.BuildConfig) []string {
	cmds := make([]string, 0, 1+len(cfg.PreBuildCommands)+len(cfg.PostBuildCommands))
	cmds = append(cmds, cfg.PreBuildCommands...)
	if cfg.BuildCommand != "" {
		cmds = append(cmds, cfg.BuildCommand)
	}
	cmds = append(cmds, cfg.PostBuildCommands...)
	return cmds
}

// WriteDefault seeds the override file with type-specific values. An
// existing file is only replaced when overwrite is set; the confirmation
// itself is the caller's concern.
func (r *Resolver) WriteDefault(root string, t domain.ProjectType, kind domain.PackageManagerKind, overwrite bool) (string, error) {
	path := OverridePath(root)

	if _, err := os.Stat(path); err == nil && !overwrite {
		return "", zerr.With(domain.ErrOverrideExists, "path", path)
	}

	seed := defaultsFor(domain.ProjectInfo{Root: root, Type: t}, kind, r.pms)
	data, err := json.MarshalIndent(seed, "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode override seed")
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // project config file
		return "", zerr.Wrap(err, "failed to write override file")
	}
	return path, nil
}
