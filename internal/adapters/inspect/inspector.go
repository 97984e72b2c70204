// Package inspect implements the project inspector adapter. It classifies a
// project from read-only filesystem probing; probing failures never abort
// detection.
package inspect

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

var _ ports.Inspector = (*Inspector)(nil)

// nextConfigFiles are the recognized Next.js configuration filenames.
var nextConfigFiles = []string{"next.config.js", "next.config.mjs", "next.config.ts"}

// nextEntryFiles are conventional Next.js page/layout entry points, relative
// to the project root.
var nextEntryFiles = []string{
	"app/page.js", "app/page.jsx", "app/page.ts", "app/page.tsx",
	"app/layout.js", "app/layout.jsx", "app/layout.ts", "app/layout.tsx",
	"pages/index.js", "pages/index.jsx", "pages/index.ts", "pages/index.tsx",
	"src/app/page.tsx", "src/app/layout.tsx", "src/pages/index.tsx",
}

// serverEntryFiles are conventional server entry filenames checked for an
// Express import reference.
var serverEntryFiles = []string{
	"server.js", "app.js", "index.js",
	"src/server.js", "src/app.js", "src/index.js",
}

// Inspector implements ports.Inspector.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect probes the project root once and returns its classification.
func (i *Inspector) Inspect(root string) domain.ProjectInfo {
	m := readManifest(root)
	return domain.ProjectInfo{
		Root:       root,
		Type:       detectType(root, m),
		TypeScript: detectTypeScript(root, m),
		Manifest:   m,
	}
}

// detectType applies the classification priority: next, express, node,
// unknown. First match wins.
func detectType(root string, m *domain.Manifest) domain.ProjectType {
	if isNext(root, m) {
		return domain.ProjectTypeNext
	}
	if isExpress(root, m) {
		return domain.ProjectTypeExpress
	}
	if isNode(root, m) {
		return domain.ProjectTypeNode
	}
	return domain.ProjectTypeUnknown
}

func isNext(root string, m *domain.Manifest) bool {
	if m.HasDependency("next") {
		return true
	}
	for _, name := range nextConfigFiles {
		if fileExists(filepath.Join(root, name)) {
			return true
		}
	}
	for _, name := range nextEntryFiles {
		if fileExists(filepath.Join(root, name)) {
			return true
		}
	}
	// A prebuilt output directory counts as Next.js evidence.
	return dirExists(filepath.Join(root, ".next"))
}

func isExpress(root string, m *domain.Manifest) bool {
	if m.HasDependency("express") {
		return true
	}
	for _, name := range serverEntryFiles {
		if referencesExpress(filepath.Join(root, name)) {
			return true
		}
	}
	return dirExists(filepath.Join(root, "routes")) || dirExists(filepath.Join(root, "middleware"))
}

func isNode(root string, m *domain.Manifest) bool {
	if m == nil {
		return false
	}
	if m.Main != "" && fileExists(filepath.Join(root, m.Main)) {
		return true
	}
	if fileExists(filepath.Join(root, "index.js")) {
		return true
	}
	if m.HasScript("start") {
		return true
	}
	if m.Type != "" {
		return true
	}
	if _, ok := m.Engines["node"]; ok {
		return true
	}
	return m.HasAnyDependency()
}

// detectTypeScript reports TypeScript usage: a tsconfig, a declared
// typescript dependency, or .ts sources under conventional directories.
func detectTypeScript(root string, m *domain.Manifest) bool {
	if fileExists(filepath.Join(root, "tsconfig.json")) {
		return true
	}
	if m.HasDependency("typescript") {
		return true
	}
	for _, dir := range []string{".", "src", "lib"} {
		if hasTypeScriptSources(filepath.Join(root, dir)) {
			return true
		}
	}
	return false
}

// hasTypeScriptSources scans one directory level for .ts/.tsx files,
// ignoring declaration files.
func hasTypeScriptSources(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".d.ts") {
			continue
		}
		if strings.HasSuffix(name, ".ts") || strings.HasSuffix(name, ".tsx") {
			return true
		}
	}
	return false
}

// referencesExpress reports whether the file at path imports express.
func referencesExpress(path string) bool {
	data, err := os.ReadFile(path) //nolint:gosec // project-local probe
	if err != nil {
		return false
	}
	content := string(data)
	return strings.Contains(content, `require('express')`) ||
		strings.Contains(content, `require("express")`) ||
		strings.Contains(content, `from 'express'`) ||
		strings.Contains(content, `from "express"`)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
