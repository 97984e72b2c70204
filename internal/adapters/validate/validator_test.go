package validate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/adapters/validate"
	"go.trai.ch/crate/internal/core/domain"
)

func TestValidate_CleanOutput(t *testing.T) {
	v := validate.NewValidator()

	rep := v.Validate(t.TempDir(), domain.ProjectTypeNode, domain.BuildConfig{},
		"compiled 14 files\nall good\n")

	assert.True(t, rep.Success)
	assert.Empty(t, rep.Messages)
}

func TestValidate_FailureSignatures(t *testing.T) {
	v := validate.NewValidator()

	output := "webpack compiled with problems\nERROR in ./src/index.ts\nModule build failed\n"
	rep := v.Validate(t.TempDir(), domain.ProjectTypeNode, domain.BuildConfig{}, output)

	assert.False(t, rep.Success)
	assert.Contains(t, rep.Messages, "error: ERROR in ./src/index.ts")
	assert.Contains(t, rep.Messages, "failed: Module build failed")
}

func TestValidate_FirstMatchingLinePerSignature(t *testing.T) {
	v := validate.NewValidator()

	output := "error: one\nerror: two\nerror: three\n"
	rep := v.Validate(t.TempDir(), domain.ProjectTypeNode, domain.BuildConfig{}, output)

	// Three lines match the same signature but only the first is recorded.
	require.Len(t, rep.Messages, 1)
	assert.Equal(t, "error: error: one", rep.Messages[0])
}

func TestValidate_WordBoundaries(t *testing.T) {
	v := validate.NewValidator()

	// "errors" and "errorLevel" must not trip the "error" signature.
	rep := v.Validate(t.TempDir(), domain.ProjectTypeNode, domain.BuildConfig{},
		"0 errors reported\nerrorLevel set to quiet\n")

	assert.True(t, rep.Success)
}

func TestValidate_NextSpecificSignatures(t *testing.T) {
	v := validate.NewValidator()
	output := "Failed to compile.\n"

	rep := v.Validate(t.TempDir(), domain.ProjectTypeNext, domain.BuildConfig{}, output)
	assert.Contains(t, rep.Messages, "next.js compile failure: Failed to compile.")

	// The same output against a plain Node project only trips the generic
	// signatures.
	rep = v.Validate(t.TempDir(), domain.ProjectTypeNode, domain.BuildConfig{}, output)
	for _, msg := range rep.Messages {
		assert.NotContains(t, msg, "next.js")
	}
}

func TestValidate_SuccessIndicators(t *testing.T) {
	tmpDir := t.TempDir()
	v := validate.NewValidator()
	cfg := domain.BuildConfig{SuccessIndicators: []string{".next", ".next/BUILD_ID"}}

	rep := v.Validate(tmpDir, domain.ProjectTypeNext, cfg, "")
	assert.False(t, rep.Success)
	assert.Len(t, rep.Messages, 2)

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".next"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".next", "BUILD_ID"), []byte("abc123"), 0o600))

	rep = v.Validate(tmpDir, domain.ProjectTypeNext, cfg, "")
	assert.True(t, rep.Success)
}
