package entities

// ReconciliationReport is the classified, filtered view of an analysis
// result. It is derived once per invocation and read-only afterwards.
type ReconciliationReport struct {
	// UsedDeclared is carried through untouched for verbose echo.
	UsedDeclared *ArtifactSet

	// KeptUsedUndeclared are used-undeclared artifacts still reported as
	// problems after ignore filtering.
	KeptUsedUndeclared *ArtifactSet

	// IgnoredUsedUndeclared are used-undeclared artifacts suppressed by an
	// ignore pattern.
	IgnoredUsedUndeclared *ArtifactSet

	// KeptUnusedDeclared are unused-declared artifacts still reported as
	// problems after ignore filtering.
	KeptUnusedDeclared *ArtifactSet

	// IgnoredUnusedDeclared are unused-declared artifacts suppressed by an
	// ignore pattern.
	IgnoredUnusedDeclared *ArtifactSet
}

// HasWarning reports whether either kept problem set is non-empty. The
// decision to turn a warning into a hard failure belongs to the caller.
func (r *ReconciliationReport) HasWarning() bool {
	return !r.KeptUsedUndeclared.IsEmpty() || !r.KeptUnusedDeclared.IsEmpty()
}
