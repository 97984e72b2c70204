package domain

import "go.trai.ch/zerr"

var (
	// ErrNoBuildCommand is returned when no build command could be resolved
	// for the project and no override supplies one. This is a distinct
	// condition, not a build failure.
	ErrNoBuildCommand = zerr.New("no build command resolvable")

	// ErrConfigInvalid is returned when the merged build configuration
	// fails validation.
	ErrConfigInvalid = zerr.New("build configuration invalid")

	// ErrOverrideExists is returned when seeding an override file that is
	// already present and the caller has not confirmed the overwrite.
	ErrOverrideExists = zerr.New("override configuration already exists")

	// ErrBuildFailed is returned when the build subprocess exited non-zero
	// or could not be spawned.
	ErrBuildFailed = zerr.New("build failed")

	// ErrArchive is returned for I/O failures during archive construction.
	// It is a distinct kind from build errors.
	ErrArchive = zerr.New("archive construction failed")

	// ErrAborted is returned when a caller decision point resolved to abort.
	ErrAborted = zerr.New("pipeline aborted")
)
