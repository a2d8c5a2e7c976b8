package entities

// AnalysisResult is the raw three-set classification produced by a
// dependency analyzer. The sets are pairwise disjoint by construction.
type AnalysisResult struct {
	// UsedDeclared is used at analysis time and present in the declared
	// dependency list. Not a problem.
	UsedDeclared *ArtifactSet

	// UsedUndeclared is used but not declared. A correctness risk: the build
	// may break if the providing dependency disappears transitively.
	UsedUndeclared *ArtifactSet

	// UnusedDeclared is declared but never used. A hygiene issue that bloats
	// the dependency tree.
	UnusedDeclared *ArtifactSet
}

// NewAnalysisResult creates an analysis result, substituting empty sets for
// nil inputs.
func NewAnalysisResult(usedDeclared, usedUndeclared, unusedDeclared *ArtifactSet) *AnalysisResult {
	if usedDeclared == nil {
		usedDeclared = NewArtifactSet()
	}
	if usedUndeclared == nil {
		usedUndeclared = NewArtifactSet()
	}
	if unusedDeclared == nil {
		unusedDeclared = NewArtifactSet()
	}
	return &AnalysisResult{
		UsedDeclared:   usedDeclared,
		UsedUndeclared: usedUndeclared,
		UnusedDeclared: unusedDeclared,
	}
}

// Clone returns an independent copy of the result so transforms never mutate
// the analyzer's output.
func (r *AnalysisResult) Clone() *AnalysisResult {
	return &AnalysisResult{
		UsedDeclared:   r.UsedDeclared.Clone(),
		UsedUndeclared: r.UsedUndeclared.Clone(),
		UnusedDeclared: r.UnusedDeclared.Clone(),
	}
}
