package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/crate/internal/core/domain"
)

func TestParseCompressionFormat(t *testing.T) {
	for _, valid := range []string{"zip", "tar_gz", "tar"} {
		f, ok := domain.ParseCompressionFormat(valid)
		assert.True(t, ok)
		assert.Equal(t, valid, string(f))
	}

	for _, invalid := range []string{"", "gzip", "tarball", "ZIP"} {
		_, ok := domain.ParseCompressionFormat(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestCompressionFormat_Extension(t *testing.T) {
	assert.Equal(t, ".zip", domain.FormatZip.Extension())
	assert.Equal(t, ".tar.gz", domain.FormatTarGz.Extension())
	assert.Equal(t, ".tar", domain.FormatTar.Extension())
}

func TestMerge_ScalarsWinWhenSet(t *testing.T) {
	base := domain.BuildConfig{
		BuildCommand:      "npm run build",
		CompressionFormat: domain.FormatZip,
	}

	merged := base.Merge(domain.BuildConfig{BuildCommand: "make"})
	assert.Equal(t, "make", merged.BuildCommand)
	assert.Equal(t, domain.FormatZip, merged.CompressionFormat)

	merged = base.Merge(domain.BuildConfig{})
	assert.Equal(t, "npm run build", merged.BuildCommand)
}

func TestMerge_EnvironmentUnionPreservesOrderAndDedupes(t *testing.T) {
	base := domain.BuildConfig{EnvironmentVars: []string{"NODE_ENV=production", "CI=1"}}
	override := domain.BuildConfig{EnvironmentVars: []string{"CI=1", "ANALYZE=1"}}

	merged := base.Merge(override)
	assert.Equal(t, []string{"NODE_ENV=production", "CI=1", "ANALYZE=1"}, merged.EnvironmentVars)
}

func TestMerge_ListsReplaceWholesale(t *testing.T) {
	base := domain.BuildConfig{
		Exclude:          []string{"node_modules", ".git"},
		PreBuildCommands: []string{"npm ci"},
	}

	merged := base.Merge(domain.BuildConfig{Exclude: []string{}})
	assert.Empty(t, merged.Exclude)

	merged = base.Merge(domain.BuildConfig{})
	assert.Equal(t, []string{"node_modules", ".git"}, merged.Exclude)
	assert.Equal(t, []string{"npm ci"}, merged.PreBuildCommands)

	merged = base.Merge(domain.BuildConfig{PreBuildCommands: []string{"corepack enable", "npm ci"}})
	assert.Equal(t, []string{"corepack enable", "npm ci"}, merged.PreBuildCommands)
}

func TestMerge_Idempotent(t *testing.T) {
	base := domain.BuildConfig{
		BuildCommand:      "npm run build",
		EnvironmentVars:   []string{"NODE_ENV=production"},
		SuccessIndicators: []string{".next"},
		Exclude:           []string{"node_modules"},
	}
	override := domain.BuildConfig{
		BuildCommand:    "make",
		EnvironmentVars: []string{"CI=1"},
		Shell:           true,
	}

	once := base.Merge(override)
	twice := once.Merge(override)
	assert.Equal(t, once, twice)
}
