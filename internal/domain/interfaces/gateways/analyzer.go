// Package gateways defines domain gateway contracts for external
// collaborators.
package gateways

import (
	"context"

	"depscope/internal/domain/entities"
)

// Analyzer produces the raw used/unused/undeclared classification for a
// project. Implementations are injected explicitly by the caller; the actual
// bytecode-level analysis lives outside this tool.
type Analyzer interface {
	Analyze(ctx context.Context, project *entities.Project) (*entities.AnalysisResult, error)
}
