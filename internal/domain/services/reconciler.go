package services

import (
	"strings"

	"depscope/internal/domain/entities"
	"depscope/internal/domain/interfaces"
)

// Reconciler turns a raw analysis result into a classified, filtered report.
// The pipeline is a fixed order of pure transforms: force-usage merge, then
// scope pruning, then pattern filtering. A forced-used artifact is therefore
// never flagged later, and scope-pruned artifacts are never matched against
// ignore patterns.
type Reconciler struct {
	log interfaces.Logger
}

// NewReconciler creates a reconciler that reports configuration problems to
// the given logger.
func NewReconciler(log interfaces.Logger) *Reconciler {
	if log == nil {
		log = &interfaces.NoOpLogger{}
	}
	return &Reconciler{log: log}
}

// Reconcile builds the report for one analysis result. The input result is
// never mutated; each invocation works on its own copies.
func (r *Reconciler) Reconcile(result *entities.AnalysisResult, cfg Config) *entities.ReconciliationReport {
	working := result.Clone()

	r.forceUsage(working, cfg.ForcedUsed)

	if cfg.IgnoreNonCompile {
		pruneNonCompile(working)
	}

	global := ParseIgnorePatterns(cfg.IgnoredDependencies)
	usedUndeclaredOnly := ParseIgnorePatterns(cfg.IgnoredUsedUndeclared)
	unusedDeclaredOnly := ParseIgnorePatterns(cfg.IgnoredUnusedDeclared)

	keptUsedUndeclared, ignoredUsedUndeclared :=
		FilterArtifacts(working.UsedUndeclared, global, usedUndeclaredOnly)
	keptUnusedDeclared, ignoredUnusedDeclared :=
		FilterArtifacts(working.UnusedDeclared, global, unusedDeclaredOnly)

	return &entities.ReconciliationReport{
		UsedDeclared:          working.UsedDeclared,
		KeptUsedUndeclared:    keptUsedUndeclared,
		IgnoredUsedUndeclared: ignoredUsedUndeclared,
		KeptUnusedDeclared:    keptUnusedDeclared,
		IgnoredUnusedDeclared: ignoredUnusedDeclared,
	}
}

// forceUsage moves every artifact matching a groupId:artifactId entry from
// the problem sets into usedDeclared. Unmatched entries are silently
// ignored; malformed entries are logged and skipped.
func (r *Reconciler) forceUsage(result *entities.AnalysisResult, forcedUsed []string) {
	for _, entry := range forcedUsed {
		groupID, artifactID, ok := splitForcedEntry(entry)
		if !ok {
			cfgErr := &entities.ConfigurationError{
				Entry:  entry,
				Reason: "expected groupId:artifactId",
			}
			r.log.Warn("Skipping forced-used dependency", interfaces.F("error", cfgErr.Error()))
			continue
		}

		moveMatching(result.UsedUndeclared, result.UsedDeclared, groupID, artifactID)
		moveMatching(result.UnusedDeclared, result.UsedDeclared, groupID, artifactID)
	}
}

func splitForcedEntry(entry string) (groupID, artifactID string, ok bool) {
	parts := strings.Split(entry, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func moveMatching(from, to *entities.ArtifactSet, groupID, artifactID string) {
	for _, artifact := range from.Items() {
		if artifact.GroupID == groupID && artifact.ArtifactID == artifactID {
			from.Remove(artifact)
			to.Add(artifact)
		}
	}
}

// pruneNonCompile drops non-compile-scope artifacts from the two problem
// sets. Used-declared is intentionally left untouched so verbose output
// still echoes the full declared-and-used list.
func pruneNonCompile(result *entities.AnalysisResult) {
	for _, set := range []*entities.ArtifactSet{result.UsedUndeclared, result.UnusedDeclared} {
		for _, artifact := range set.Items() {
			if artifact.ScopeOrDefault() != entities.ScopeCompile {
				set.Remove(artifact)
			}
		}
	}
}
