package archive

import (
	"io/fs"
	"path/filepath"

	"go.trai.ch/zerr"
)

// entry is one file selected for archiving.
type entry struct {
	// rel is the slash-normalized path relative to the plan root, used as
	// the archive entry name and for pattern matching.
	rel  string
	abs  string
	info fs.FileInfo
}

// collect walks the plan root and returns the files admitted by the
// filter, plus their total byte size. Excluded directories are pruned
// without descending. skip names the output artifact, so a previous run's
// artifact inside the root is never packed into the next one.
func collect(root string, f filter, skip string) ([]entry, int64, error) {
	var entries []entry
	var total int64

	skipAbs, err := filepath.Abs(skip)
	if err != nil {
		skipAbs = skip
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if f.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if abs, absErr := filepath.Abs(path); absErr == nil && abs == skipAbs {
			return nil
		}

		if !f.admits(rel) {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}

		entries = append(entries, entry{rel: rel, abs: path, info: info})
		total += info.Size()
		return nil
	})
	if err != nil {
		return nil, 0, zerr.Wrap(err, "failed to scan project tree")
	}

	return entries, total, nil
}
