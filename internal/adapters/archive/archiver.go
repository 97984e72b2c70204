// Package archive implements the archive builder adapter with three
// compression strategies: zip, tar and tar+gzip.
package archive

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Archiver = (*Builder)(nil)

// Builder implements ports.Archiver.
type Builder struct {
	logger ports.Logger
	// zipLevel is the deflate level for the zip strategy.
	zipLevel int
}

// NewBuilder creates a Builder with maximum zip compression.
func NewBuilder(logger ports.Logger) *Builder {
	return &Builder{logger: logger, zipLevel: 9}
}

// WithZipLevel overrides the zip deflate level.
func (b *Builder) WithZipLevel(level int) *Builder {
	b.zipLevel = level
	return b
}

// Build materializes the plan into a single artifact file. Any failure
// removes partially written output, including intermediate temporary
// files, before the error is returned wrapping domain.ErrArchive.
func (b *Builder) Build(ctx context.Context, plan domain.ArchivePlan, sink ports.ProgressSink) (domain.Artifact, error) {
	entries, total, err := collect(plan.Root, newFilter(plan.Excludes, plan.Includes), plan.OutputPath)
	if err != nil {
		return domain.Artifact{}, archiveErr(err)
	}

	progress := &tracker{sink: sink, logger: b.logger, total: total}

	switch plan.Format {
	case domain.FormatTarGz:
		err = b.buildTarGz(ctx, plan.OutputPath, entries, progress)
	case domain.FormatTar:
		err = b.buildTar(ctx, plan.OutputPath, entries, progress)
	case domain.FormatZip:
		err = b.buildZip(ctx, plan.OutputPath, entries, progress)
	default:
		err = zerr.With(zerr.New("unsupported compression format"), "format", string(plan.Format))
	}
	if err != nil {
		// A partial final artifact must never be observable as valid.
		_ = os.Remove(plan.OutputPath)
		return domain.Artifact{}, archiveErr(err)
	}

	return b.describe(plan.OutputPath, len(entries))
}

// describe stats and digests the finished artifact.
func (b *Builder) describe(path string, entries int) (domain.Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Artifact{}, archiveErr(err)
	}

	digest, err := digestFile(path)
	if err != nil {
		return domain.Artifact{}, archiveErr(err)
	}

	return domain.Artifact{
		Path:    path,
		Size:    info.Size(),
		Entries: entries,
		Digest:  digest,
	}, nil
}

// digestFile computes the xxhash of the artifact contents.
func digestFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // artifact we just wrote
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// archiveErr tags a failure with the archive error kind so callers can
// distinguish it from build errors.
func archiveErr(err error) error {
	return zerr.With(domain.ErrArchive, "cause", err.Error())
}

// tracker emits archive progress events and the one-time oversize warning.
type tracker struct {
	sink    ports.ProgressSink
	logger  ports.Logger
	entries int
	bytes   int64
	total   int64
	warned  bool
}

// addEntry records one finished entry of n bytes.
func (t *tracker) addEntry(n int64) {
	t.entries++
	t.bytes += n
	t.sink.ArchiveEvent(domain.ArchiveProgressEvent{
		EntriesProcessed: t.entries,
		BytesProcessed:   t.bytes,
		BytesTotal:       t.total,
	})

	if !t.warned && t.bytes > domain.ArchiveSizeWarnBytes {
		t.warned = true
		t.logger.Warn(fmt.Sprintf("archive exceeds %d MiB; uploads may be slow", domain.ArchiveSizeWarnBytes>>20))
	}
}
