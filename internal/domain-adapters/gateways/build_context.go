package gateways

import "depscope/internal/domain/interfaces"

// noopBuildContext ignores refresh notifications. It is the default when no
// IDE or incremental-build host is listening.
type noopBuildContext struct{}

// NewNoopBuildContext creates a notifier that does nothing.
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewNoopBuildContext() *noopBuildContext {
	return &noopBuildContext{}
}

func (n *noopBuildContext) Refresh(_ string) {}

func (n *noopBuildContext) IsIncremental() bool { return false }

// loggingBuildContext records refresh notifications at debug level. It
// stands in for a real incremental-build host during plain CLI runs.
type loggingBuildContext struct {
	log         interfaces.Logger
	incremental bool
}

// NewLoggingBuildContext creates a notifier that logs refreshes. The
// incremental flag mirrors whether the invocation came from an incremental
// build trigger.
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewLoggingBuildContext(log interfaces.Logger, incremental bool) *loggingBuildContext {
	if log == nil {
		log = &interfaces.NoOpLogger{}
	}
	return &loggingBuildContext{log: log, incremental: incremental}
}

func (l *loggingBuildContext) Refresh(path string) {
	l.log.Debug("Refreshing build context", interfaces.F("path", path))
}

func (l *loggingBuildContext) IsIncremental() bool { return l.incremental }
