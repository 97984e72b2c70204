package archive

import (
	"archive/tar"
	"context"
	"io"
	"os"
)

// buildTar writes entries directly to the output with no compression.
func (b *Builder) buildTar(ctx context.Context, outputPath string, entries []entry, progress *tracker) (err error) {
	out, err := os.Create(outputPath) //nolint:gosec // caller-resolved artifact path
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return writeTar(ctx, out, entries, progress)
}

// writeTar streams entries through a tar writer.
func writeTar(ctx context.Context, w io.Writer, entries []entry, progress *tracker) (err error) {
	tw := tar.NewWriter(w)
	defer func() {
		if closeErr := tw.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		header, headerErr := tar.FileInfoHeader(e.info, "")
		if headerErr != nil {
			return headerErr
		}
		header.Name = e.rel

		if err := tw.WriteHeader(header); err != nil {
			return err
		}

		n, copyErr := copyFile(tw, e.abs)
		if copyErr != nil {
			return copyErr
		}
		progress.addEntry(n)
	}

	return nil
}
