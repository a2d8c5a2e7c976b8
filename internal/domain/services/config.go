package services

// DefaultScriptableFlag is the marker prefix used by the scriptable renderer
// when no flag is configured.
const DefaultScriptableFlag = "$$$%%%"

// Config is the immutable per-invocation configuration for a reconciliation
// run. It is assembled once by the caller and passed by value.
type Config struct {
	// FailOnWarning makes the caller escalate a warning to a hard failure.
	// The reconciler itself only reports.
	FailOnWarning bool

	// Verbose echoes used-declared and ignored groups in the console report.
	Verbose bool

	// IgnoreNonCompile prunes runtime/provided/test/system scoped artifacts
	// from the problem sets before filtering.
	IgnoreNonCompile bool

	// Renderer selection.
	OutputXML        bool
	OutputJSON       bool
	ScriptableOutput bool
	ScriptableFlag   string

	// ForcedUsed lists groupId:artifactId identifiers to treat as used even
	// when static analysis cannot prove it (reflection-only usage and the
	// like).
	ForcedUsed []string

	// IgnoredDependencies applies to both problem kinds; the kind-specific
	// lists apply to one each.
	IgnoredDependencies   []string
	IgnoredUsedUndeclared []string
	IgnoredUnusedDeclared []string
}
