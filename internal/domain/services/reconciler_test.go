package services

import (
	"testing"

	"depscope/internal/domain/entities"
)

func artifact(group, id string) entities.Artifact {
	return entities.Artifact{GroupID: group, ArtifactID: id, Version: "1.0", Type: "jar", Scope: "compile"}
}

func TestReconcileForceUsageMovesArtifacts(t *testing.T) {
	x := artifact("org.example", "reflective")
	result := entities.NewAnalysisResult(
		nil,
		nil,
		entities.NewArtifactSet(x),
	)

	report := NewReconciler(nil).Reconcile(result, Config{
		ForcedUsed: []string{"org.example:reflective"},
	})

	if !report.UsedDeclared.Contains(x) {
		t.Error("forced-used artifact should move into usedDeclared")
	}
	if report.KeptUnusedDeclared.Contains(x) || report.IgnoredUnusedDeclared.Contains(x) {
		t.Error("forced-used artifact should be absent from unused-declared sets")
	}
	if report.HasWarning() {
		t.Error("HasWarning() = true, want false")
	}
}

// Force-usage merge must only move artifacts between sets, never duplicate
// or drop them.
func TestReconcileForceUsagePreservesPartition(t *testing.T) {
	a := artifact("g", "a")
	b := artifact("g", "b")
	c := artifact("g", "c")
	result := entities.NewAnalysisResult(
		entities.NewArtifactSet(a),
		entities.NewArtifactSet(b),
		entities.NewArtifactSet(c),
	)

	report := NewReconciler(nil).Reconcile(result, Config{
		ForcedUsed: []string{"g:b", "g:c"},
	})

	total := report.UsedDeclared.Len() +
		report.KeptUsedUndeclared.Len() + report.IgnoredUsedUndeclared.Len() +
		report.KeptUnusedDeclared.Len() + report.IgnoredUnusedDeclared.Len()
	if total != 3 {
		t.Fatalf("total artifacts after merge = %d, want 3", total)
	}

	for _, moved := range []entities.Artifact{a, b, c} {
		if !report.UsedDeclared.Contains(moved) {
			t.Errorf("%s should be in usedDeclared", moved.ID())
		}
	}
}

func TestReconcileUnmatchedForcedUsedIsIgnored(t *testing.T) {
	x := artifact("g", "a")
	result := entities.NewAnalysisResult(nil, entities.NewArtifactSet(x), nil)

	report := NewReconciler(nil).Reconcile(result, Config{
		ForcedUsed: []string{"does.not:exist"},
	})

	if !report.KeptUsedUndeclared.Contains(x) {
		t.Error("unmatched forced-used entry should change nothing")
	}
}

func TestReconcileMalformedForcedUsedIsSkipped(t *testing.T) {
	x := artifact("g", "a")
	result := entities.NewAnalysisResult(nil, entities.NewArtifactSet(x), nil)

	report := NewReconciler(nil).Reconcile(result, Config{
		ForcedUsed: []string{"not-a-coordinate", "g:a:extra", ":missing"},
	})

	if !report.KeptUsedUndeclared.Contains(x) {
		t.Error("malformed forced-used entries should be skipped, not matched")
	}
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	x := artifact("g", "a")
	result := entities.NewAnalysisResult(nil, nil, entities.NewArtifactSet(x))

	NewReconciler(nil).Reconcile(result, Config{
		ForcedUsed:          []string{"g:a"},
		IgnoredDependencies: []string{"g:*"},
	})

	if !result.UnusedDeclared.Contains(x) {
		t.Error("Reconcile mutated its input result")
	}
}

// Scenario: one used-undeclared artifact, no patterns.
func TestReconcileReportsUsedUndeclared(t *testing.T) {
	x := artifact("org.example", "core")
	result := entities.NewAnalysisResult(nil, entities.NewArtifactSet(x), nil)

	report := NewReconciler(nil).Reconcile(result, Config{})

	if !report.KeptUsedUndeclared.Contains(x) {
		t.Error("artifact should be kept as used-undeclared")
	}
	if !report.HasWarning() {
		t.Error("HasWarning() = false, want true")
	}
}

// Scenario: the same artifact suppressed by a group wildcard pattern.
func TestReconcileIgnorePatternSuppressesWarning(t *testing.T) {
	x := artifact("org.example", "core")
	result := entities.NewAnalysisResult(nil, entities.NewArtifactSet(x), nil)

	report := NewReconciler(nil).Reconcile(result, Config{
		IgnoredDependencies: []string{"org.example:*:*:*"},
	})

	if report.KeptUsedUndeclared.Len() != 0 {
		t.Errorf("keptUsedUndeclared.Len() = %d, want 0", report.KeptUsedUndeclared.Len())
	}
	if !report.IgnoredUsedUndeclared.Contains(x) {
		t.Error("artifact should be recorded as ignored")
	}
	if report.HasWarning() {
		t.Error("HasWarning() = true, want false")
	}
}

// Scenario: non-compile artifacts vanish entirely before filtering.
func TestReconcileIgnoreNonCompilePrunesBeforeFiltering(t *testing.T) {
	y := entities.Artifact{GroupID: "g", ArtifactID: "test-only", Version: "1.0", Scope: "test"}
	result := entities.NewAnalysisResult(nil, entities.NewArtifactSet(y), nil)

	report := NewReconciler(nil).Reconcile(result, Config{
		IgnoreNonCompile:    true,
		IgnoredDependencies: []string{"g:*"},
	})

	if report.KeptUsedUndeclared.Contains(y) || report.IgnoredUsedUndeclared.Contains(y) {
		t.Error("pruned artifact must not appear in kept or ignored sets")
	}
	if report.HasWarning() {
		t.Error("HasWarning() = true, want false")
	}
}

func TestReconcileNonCompilePruningSparesUsedDeclared(t *testing.T) {
	declared := entities.Artifact{GroupID: "g", ArtifactID: "runtime-dep", Version: "1.0", Scope: "runtime"}
	result := entities.NewAnalysisResult(entities.NewArtifactSet(declared), nil, nil)

	report := NewReconciler(nil).Reconcile(result, Config{IgnoreNonCompile: true})

	if !report.UsedDeclared.Contains(declared) {
		t.Error("usedDeclared must not be scope-pruned")
	}
}

func TestReconcileKindSpecificListsDoNotCrossOver(t *testing.T) {
	undeclared := artifact("g", "undeclared")
	unused := artifact("g", "unused")
	result := entities.NewAnalysisResult(
		nil,
		entities.NewArtifactSet(undeclared),
		entities.NewArtifactSet(unused),
	)

	report := NewReconciler(nil).Reconcile(result, Config{
		IgnoredUsedUndeclared: []string{"g:undeclared"},
		IgnoredUnusedDeclared: []string{"g:unused"},
	})

	if !report.IgnoredUsedUndeclared.Contains(undeclared) {
		t.Error("used-undeclared list should suppress its artifact")
	}
	if !report.IgnoredUnusedDeclared.Contains(unused) {
		t.Error("unused-declared list should suppress its artifact")
	}
	if report.HasWarning() {
		t.Error("HasWarning() = true, want false")
	}

	swapped := NewReconciler(nil).Reconcile(result, Config{
		IgnoredUsedUndeclared: []string{"g:unused"},
		IgnoredUnusedDeclared: []string{"g:undeclared"},
	})
	if !swapped.HasWarning() {
		t.Error("kind-specific lists must not apply to the other kind")
	}
}

func TestReconcileOrderForceBeforePruneBeforeFilter(t *testing.T) {
	// A test-scoped artifact forced used must survive in usedDeclared even
	// with non-compile pruning and a catch-all ignore pattern active.
	forced := entities.Artifact{GroupID: "g", ArtifactID: "a", Version: "1.0", Scope: "test"}
	result := entities.NewAnalysisResult(nil, nil, entities.NewArtifactSet(forced))

	report := NewReconciler(nil).Reconcile(result, Config{
		ForcedUsed:          []string{"g:a"},
		IgnoreNonCompile:    true,
		IgnoredDependencies: []string{"*"},
	})

	if !report.UsedDeclared.Contains(forced) {
		t.Error("forced-used artifact should survive pruning and filtering")
	}
}
