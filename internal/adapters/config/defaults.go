package config

import (
	"strings"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

// scriptFallbacks are the manifest scripts tried, in order, for plain
// JavaScript projects with no declared build script.
var scriptFallbacks = []string{"build", "compile", "bundle"}

// defaultsFor returns the built-in BuildConfig for the detected project
// type. The conventional output directories live in the success indicator
// set; OutputDir is populated only by user overrides, since the
// conventional directories do not exist before the first build.
func defaultsFor(info domain.ProjectInfo, kind domain.PackageManagerKind, pms ports.PackageManagers) domain.BuildConfig {
	cfg := domain.BuildConfig{
		BuildCommand:    defaultCommand(info, kind, pms),
		EnvironmentVars: []string{"NODE_ENV=production"},
		Exclude:         []string{"node_modules", ".git"},
	}

	switch info.Type {
	case domain.ProjectTypeNext:
		cfg.SuccessIndicators = []string{".next", ".next/BUILD_ID"}
		cfg.Exclude = append(cfg.Exclude, ".next/cache")
		cfg.CompressionFormat = domain.FormatZip
	case domain.ProjectTypeExpress, domain.ProjectTypeNode:
		cfg.SuccessIndicators = []string{"dist"}
		cfg.CompressionFormat = domain.FormatTarGz
	default:
		cfg.EnvironmentVars = nil
		cfg.CompressionFormat = domain.FormatZip
	}

	return cfg
}

// defaultCommand synthesizes the build command, most specific first:
// the declared build script, the Next.js build subcommand, the TypeScript
// compiler, then the first of the plain-JS script fallbacks. An empty
// result is the distinct "no build step" state, not an error.
func defaultCommand(info domain.ProjectInfo, kind domain.PackageManagerKind, pms ports.PackageManagers) string {
	m := info.Manifest

	if m.HasScript("build") {
		return joinArgv(pms.RunScript(kind, "build"))
	}

	if info.Type == domain.ProjectTypeNext {
		return joinArgv(pms.ExecTool(kind, "next", "build"))
	}

	if info.TypeScript {
		if m.HasScript("tsc") {
			return joinArgv(pms.RunScript(kind, "tsc"))
		}
		return joinArgv(pms.ExecTool(kind, "tsc"))
	}

	for _, script := range scriptFallbacks {
		if m.HasScript(script) {
			return joinArgv(pms.RunScript(kind, script))
		}
	}

	return ""
}

func joinArgv(argv []string) string {
	return strings.Join(argv, " ")
}
