package archive

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
)

// buildTarGz first materializes an uncompressed tar of the entries to a
// temporary file, then streams it through a gzip filter into the final
// artifact. The temporary file is removed on success and on every failure
// path.
func (b *Builder) buildTarGz(ctx context.Context, outputPath string, entries []entry, progress *tracker) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".crate-*.tar")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := writeTar(ctx, tmp, entries, progress); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return gzipFile(tmpPath, outputPath)
}

// gzipFile streams src through gzip into dst.
func gzipFile(src, dst string) (err error) {
	in, err := os.Open(src) //nolint:gosec // temporary file we just wrote
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst) //nolint:gosec // caller-resolved artifact path
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		return err
	}
	return gz.Close()
}
