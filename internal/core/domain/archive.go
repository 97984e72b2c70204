package domain

// ArchiveSizeWarnBytes is the cumulative processed size past which the
// archiver emits its one-time oversize warning.
const ArchiveSizeWarnBytes = 50 << 20

// ArchivePlan is the resolved set of inclusion/exclusion rules and the
// compression strategy for one packaging run. Computed immediately before
// archiving and never persisted.
type ArchivePlan struct {
	Root       string
	Format     CompressionFormat
	Excludes   []string
	Includes   []string
	OutputPath string
}

// ArchiveProgressEvent reports entry/byte progress during archive
// construction. BytesTotal is zero when the total is unknown.
type ArchiveProgressEvent struct {
	EntriesProcessed int
	BytesProcessed   int64
	BytesTotal       int64
}

// Artifact describes the produced archive file.
type Artifact struct {
	Path    string
	Size    int64
	Entries int
	// Digest is the xxhash of the final artifact contents, usable as a
	// cheap integrity handle by the upload collaborator.
	Digest string
}
