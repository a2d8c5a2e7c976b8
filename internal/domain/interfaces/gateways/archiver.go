package gateways

import "context"

// ExtractRequest describes a single archive extraction.
type ExtractRequest struct {
	// Source is the archive file to unpack.
	Source string

	// Dest is the directory to unpack into. Created if missing.
	Dest string

	// Includes and Excludes are optional *-wildcard path patterns matched
	// against slash-separated entry names. An entry is extracted iff it
	// matches an include (or none are given) and matches no exclude.
	Includes []string
	Excludes []string

	// Encoding is an optional IANA charset name used to decode non-UTF-8
	// entry names. Only honored by archive formats that carry legacy names.
	Encoding string
}

// UnArchiver extracts a single archive format.
type UnArchiver interface {
	Extract(ctx context.Context, req ExtractRequest) error
}

// ArchiverManager looks up the unarchiver for an archive, by explicit type
// hint first and by file extension as a fallback.
type ArchiverManager interface {
	UnArchiver(typeHint, path string) (UnArchiver, error)
}
