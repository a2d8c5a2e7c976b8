package services

import (
	"depscope/internal/domain/entities"
	"depscope/internal/domain/interfaces"
)

// ConsoleRenderer writes the human-readable report to a logger sink. Kept
// problem groups log at warn severity, everything else at info.
type ConsoleRenderer struct {
	log interfaces.Logger
}

// NewConsoleRenderer creates a console renderer for the given sink.
func NewConsoleRenderer(log interfaces.Logger) *ConsoleRenderer {
	return &ConsoleRenderer{log: log}
}

// Render logs the report. Verbose mode additionally echoes the used-declared
// and ignored groups, printing "   None" for empty ones. When nothing at all
// was reported, a single "no problems" line is emitted instead.
func (c *ConsoleRenderer) Render(report *entities.ReconciliationReport, verbose bool) {
	reported := false

	if verbose {
		c.log.Info("Used declared dependencies found:")
		c.logArtifacts(report.UsedDeclared, false)
		reported = true
	}

	if !report.KeptUsedUndeclared.IsEmpty() {
		c.log.Warn("Used undeclared dependencies found:")
		c.logArtifacts(report.KeptUsedUndeclared, true)
		reported = true
	}

	if !report.KeptUnusedDeclared.IsEmpty() {
		c.log.Warn("Unused declared dependencies found:")
		c.logArtifacts(report.KeptUnusedDeclared, true)
		reported = true
	}

	if verbose {
		c.log.Info("Ignored used undeclared dependencies:")
		c.logArtifacts(report.IgnoredUsedUndeclared, false)

		c.log.Info("Ignored unused declared dependencies:")
		c.logArtifacts(report.IgnoredUnusedDeclared, false)
		reported = true
	}

	if !reported {
		c.log.Info("No dependency problems found")
	}
}

func (c *ConsoleRenderer) logArtifacts(artifacts *entities.ArtifactSet, warn bool) {
	if artifacts.IsEmpty() {
		c.log.Info("   None")
		return
	}
	for _, artifact := range artifacts.Items() {
		if warn {
			c.log.Warn("   " + artifact.String())
		} else {
			c.log.Info("   " + artifact.String())
		}
	}
}
