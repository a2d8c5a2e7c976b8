// Package analysisfile implements the analyzer gateway by loading a raw
// analysis dump written by an external bytecode analyzer.
package analysisfile

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"depscope/internal/domain/entities"
)

// yamlArtifact is one artifact entry in the dump.
type yamlArtifact struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version"`
	Classifier string `yaml:"classifier"`
	Type       string `yaml:"type"`
	Scope      string `yaml:"scope"`
}

// yamlAnalysis is the raw dump structure: three artifact lists whose order
// is preserved into the result sets.
type yamlAnalysis struct {
	UsedDeclared   []yamlArtifact `yaml:"usedDeclared"`
	UsedUndeclared []yamlArtifact `yaml:"usedUndeclared"`
	UnusedDeclared []yamlArtifact `yaml:"unusedDeclared"`
}

// Analyzer loads an analysis result from a YAML file. It stands in for the
// external bytecode analyzer, which runs out-of-process and dumps its raw
// classification for this tool to reconcile.
type Analyzer struct {
	path string
}

// NewAnalyzer creates an analyzer reading the dump at path.
func NewAnalyzer(path string) *Analyzer {
	return &Analyzer{path: path}
}

// Analyze parses the dump into an AnalysisResult, preserving list order.
func (a *Analyzer) Analyze(_ context.Context, _ *entities.Project) (*entities.AnalysisResult, error) {
	//nolint:gosec // G304: path is the analysis dump chosen by the caller
	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis file %s: %w", a.path, err)
	}
	return a.Parse(data)
}

// Parse parses YAML bytes into an AnalysisResult.
func (a *Analyzer) Parse(data []byte) (*entities.AnalysisResult, error) {
	var raw yamlAnalysis
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse analysis file: %w", err)
	}

	return entities.NewAnalysisResult(
		convertArtifacts(raw.UsedDeclared),
		convertArtifacts(raw.UsedUndeclared),
		convertArtifacts(raw.UnusedDeclared),
	), nil
}

func convertArtifacts(raw []yamlArtifact) *entities.ArtifactSet {
	set := entities.NewArtifactSet()
	for _, ya := range raw {
		set.Add(entities.Artifact{
			GroupID:    ya.GroupID,
			ArtifactID: ya.ArtifactID,
			Version:    ya.Version,
			Classifier: ya.Classifier,
			Type:       ya.Type,
			Scope:      ya.Scope,
		})
	}
	return set
}
