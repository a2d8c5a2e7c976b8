// Package orchestrators coordinates services and gateways for complete use
// cases.
package orchestrators

import (
	"context"

	"depscope/internal/domain/entities"
	"depscope/internal/domain/interfaces"
	"depscope/internal/domain/interfaces/gateways"
	"depscope/internal/domain/services"
)

// AnalyzeOrchestrator coordinates the full analysis use case: run the
// injected analyzer, reconcile the raw result, and render every requested
// output format.
type AnalyzeOrchestrator struct {
	analyzer   gateways.Analyzer
	reconciler *services.Reconciler
	log        interfaces.Logger
}

// AnalysisOutput bundles the reconciliation report with the rendered text
// blobs the caller asked for. Unrequested formats stay empty.
type AnalysisOutput struct {
	Report     *entities.ReconciliationReport
	XML        string
	JSON       string
	Scriptable string
}

// NewAnalyzeOrchestrator creates an orchestrator around an explicitly chosen
// analyzer implementation.
func NewAnalyzeOrchestrator(analyzer gateways.Analyzer, log interfaces.Logger) *AnalyzeOrchestrator {
	return &AnalyzeOrchestrator{
		analyzer:   analyzer,
		reconciler: services.NewReconciler(log),
		log:        log,
	}
}

// Run executes one analysis invocation. Analyzer failures abort before any
// rendering so no partial report is ever emitted.
func (o *AnalyzeOrchestrator) Run(ctx context.Context, project *entities.Project, cfg services.Config) (*AnalysisOutput, error) {
	result, err := o.analyzer.Analyze(ctx, project)
	if err != nil {
		return nil, &entities.AnalysisError{Err: err}
	}

	report := o.reconciler.Reconcile(result, cfg)
	output := &AnalysisOutput{Report: report}

	services.NewConsoleRenderer(o.log).Render(report, cfg.Verbose)

	if cfg.OutputXML {
		fragment, err := services.RenderXML(report.KeptUsedUndeclared)
		if err != nil {
			return nil, err
		}
		if fragment != "" {
			o.log.Info("Add the following to your pom to correct the missing dependencies:")
			o.log.Info("\n" + fragment)
		}
		output.XML = fragment
	}

	if cfg.OutputJSON {
		fragment := services.RenderJSON(project, report.KeptUsedUndeclared, report.KeptUnusedDeclared)
		if fragment != "" {
			o.log.Warn(fragment)
		}
		output.JSON = fragment
	}

	if cfg.ScriptableOutput {
		lines := services.RenderScriptable(cfg.ScriptableFlag, project.POMPath, report.KeptUsedUndeclared)
		if lines != "" {
			o.log.Info("Missing dependencies:")
			o.log.Info("\n" + lines)
		}
		output.Scriptable = lines
	}

	return output, nil
}
