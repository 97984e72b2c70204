package inspect_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/adapters/inspect"
	"go.trai.ch/crate/internal/core/domain"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestInspect_NextByDependency(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "package.json", `{"name":"web","dependencies":{"next":"14.0.0","react":"18.0.0"}}`)

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.Equal(t, domain.ProjectTypeNext, info.Type)
	assert.Equal(t, "web", info.Name())
}

func TestInspect_NextByConfigFileWithoutManifest(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "next.config.mjs", "export default {}\n")

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.Equal(t, domain.ProjectTypeNext, info.Type)
	assert.Nil(t, info.Manifest)
}

func TestInspect_NextWinsOverExpress(t *testing.T) {
	// A project depending on both is classified by priority order.
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "package.json", `{"dependencies":{"next":"14.0.0","express":"4.18.0"}}`)

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.Equal(t, domain.ProjectTypeNext, info.Type)
}

func TestInspect_ExpressByDependency(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "package.json", `{"name":"api","dependencies":{"express":"4.18.0"}}`)

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.Equal(t, domain.ProjectTypeExpress, info.Type)
}

func TestInspect_ExpressBySourceReference(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "server.js", "const express = require('express')\nconst app = express()\n")

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.Equal(t, domain.ProjectTypeExpress, info.Type)
}

func TestInspect_NodeByMainEntry(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "package.json", `{"name":"tool","main":"cli.js"}`)
	writeFile(t, tmpDir, "cli.js", "console.log('hi')\n")

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.Equal(t, domain.ProjectTypeNode, info.Type)
}

func TestInspect_NodeByStartScript(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "package.json", `{"scripts":{"start":"node server.js"}}`)

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.Equal(t, domain.ProjectTypeNode, info.Type)
}

func TestInspect_UnknownOnEmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.Equal(t, domain.ProjectTypeUnknown, info.Type)
	assert.False(t, info.TypeScript)
}

func TestInspect_MalformedManifestDegradesToDefaults(t *testing.T) {
	// A broken manifest must never abort detection; other evidence still
	// counts.
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "package.json", `{"name": "broken",`)
	writeFile(t, tmpDir, "index.js", "console.log('hi')\n")

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.Nil(t, info.Manifest)
	// index.js alone is Node evidence only when a manifest exists; without
	// one the project stays unknown.
	assert.Equal(t, domain.ProjectTypeUnknown, info.Type)
	assert.Equal(t, "", info.Name())
}

func TestInspect_TypeScriptByTsconfig(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "package.json", `{"dependencies":{"express":"4.18.0"}}`)
	writeFile(t, tmpDir, "tsconfig.json", "{}")

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.True(t, info.TypeScript)
}

func TestInspect_TypeScriptBySources(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "src/main.ts", "export {}\n")

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.True(t, info.TypeScript)
}

func TestInspect_DeclarationFilesAreNotTypeScriptSources(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "src/types.d.ts", "declare const x: number\n")

	info := inspect.NewInspector().Inspect(tmpDir)

	assert.False(t, info.TypeScript)
}
