package entities

import "fmt"

// AnalysisError wraps an upstream analyzer failure. It aborts the run before
// any rendering happens so no partial report is emitted.
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("cannot analyze dependencies: %v", e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// ConfigurationError describes a malformed configuration entry, such as a
// force-used identifier that is not groupId:artifactId. It is logged and the
// offending entry skipped, never fatal.
type ConfigurationError struct {
	Entry  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration entry %q: %s", e.Entry, e.Reason)
}

// ArchiveError wraps an extraction or packaging failure with
// source/destination context.
type ArchiveError struct {
	Source string
	Dest   string
	Err    error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("error unpacking file %s to %s: %v", e.Source, e.Dest, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// UnknownArchiverError indicates that no unarchiver is registered for the
// requested archive type or file extension.
type UnknownArchiverError struct {
	Type string
}

func (e *UnknownArchiverError) Error() string {
	return fmt.Sprintf("unknown archiver type %q", e.Type)
}
