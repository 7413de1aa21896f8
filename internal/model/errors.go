package model

import (
	"errors"
	"fmt"
)

// ErrNotRealized is returned when release metadata is requested before
// the release has been realized.
var ErrNotRealized = errors.New("release has not been realized")

// NoGoalsError reports a release declared with an empty goal set.
type NoGoalsError struct {
	Release string
	Version string
}

func (e *NoGoalsError) Error() string {
	return fmt.Sprintf("No applications configured to be included in release %s-%s", e.Release, e.Version)
}

// AppNotFoundError reports a goal or transitive dependency that no world
// entry satisfies.
type AppNotFoundError struct {
	Name string
}

func (e *AppNotFoundError) Error() string {
	return fmt.Sprintf("Application needed for release not found: %s", e.Name)
}

// ReleaseNotFoundError reports a requested release identity with no
// matching declaration in the loaded configuration. This is about the
// release itself, not about any dependency (see AppNotFoundError).
type ReleaseNotFoundError struct {
	Name    string
	Version string
}

func (e *ReleaseNotFoundError) Error() string {
	return fmt.Sprintf("No release named %s of version %s found in configuration", e.Name, e.Version)
}

// RuntimeDirError reports a failed runtime scan of a supplied directory.
// All failure modes of the scan (no match, malformed entry name,
// filesystem error) collapse into this one class.
type RuntimeDirError struct {
	Dir string
}

func (e *RuntimeDirError) Error() string {
	return fmt.Sprintf("Unable to find runtime in %s", e.Dir)
}

// InvalidOverrideShapeError reports an override entry that matches none
// of the recognized author shapes. Raw carries a rendering of the
// offending value for the message.
type InvalidOverrideShapeError struct {
	Name string
	Raw  string
}

func (e *InvalidOverrideShapeError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid override shape for application %s: %s", e.Name, e.Raw)
	}
	return fmt.Sprintf("invalid override shape: %s", e.Raw)
}
