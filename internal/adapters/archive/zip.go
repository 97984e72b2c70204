package archive

import (
	"archive/zip"
	"compress/flate"
	"context"
	"io"
	"os"
)

// buildZip writes entries with streaming per-entry deflate compression.
func (b *Builder) buildZip(ctx context.Context, outputPath string, entries []entry, progress *tracker) (err error) {
	out, err := os.Create(outputPath) //nolint:gosec // caller-resolved artifact path
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, b.zipLevel)
	})
	defer func() {
		if closeErr := zw.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		header, headerErr := zip.FileInfoHeader(e.info)
		if headerErr != nil {
			return headerErr
		}
		header.Name = e.rel
		header.Method = zip.Deflate

		w, createErr := zw.CreateHeader(header)
		if createErr != nil {
			return createErr
		}

		n, copyErr := copyFile(w, e.abs)
		if copyErr != nil {
			return copyErr
		}
		progress.addEntry(n)
	}

	return nil
}

// copyFile streams one file into the archive writer.
func copyFile(w io.Writer, path string) (int64, error) {
	f, err := os.Open(path) //nolint:gosec // path produced by the walker
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()
	return io.Copy(w, f)
}
