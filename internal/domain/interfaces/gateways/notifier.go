package gateways

// BuildContextNotifier informs an IDE or incremental-build host that a file
// or directory changed. Refresh is fire-and-forget: no return contract is
// relied upon.
type BuildContextNotifier interface {
	Refresh(path string)

	// IsIncremental reports whether the current invocation was triggered by
	// an incremental build.
	IsIncremental() bool
}
