// Package config loads reconciliation configuration from YAML or TOML
// files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"depscope/internal/domain/services"
)

// fileConfig mirrors services.Config with file tags. Flag values set on the
// command line win over file values, so everything here is optional.
type fileConfig struct {
	FailOnWarning    bool   `yaml:"failOnWarning" toml:"failOnWarning"`
	Verbose          bool   `yaml:"verbose" toml:"verbose"`
	IgnoreNonCompile bool   `yaml:"ignoreNonCompile" toml:"ignoreNonCompile"`
	OutputXML        bool   `yaml:"outputXML" toml:"outputXML"`
	OutputJSON       bool   `yaml:"outputJSON" toml:"outputJSON"`
	ScriptableOutput bool   `yaml:"scriptableOutput" toml:"scriptableOutput"`
	ScriptableFlag   string `yaml:"scriptableFlag" toml:"scriptableFlag"`

	ForcedUsed            []string `yaml:"forcedUsed" toml:"forcedUsed"`
	IgnoredDependencies   []string `yaml:"ignoredDependencies" toml:"ignoredDependencies"`
	IgnoredUsedUndeclared []string `yaml:"ignoredUsedUndeclaredDependencies" toml:"ignoredUsedUndeclaredDependencies"`
	IgnoredUnusedDeclared []string `yaml:"ignoredUnusedDeclaredDependencies" toml:"ignoredUnusedDeclaredDependencies"`
}

// Load reads a config file into a services.Config. The format is chosen by
// extension: .toml parses as TOML, everything else as YAML.
func Load(path string) (services.Config, error) {
	//nolint:gosec // G304: path is the user's config file
	data, err := os.ReadFile(path)
	if err != nil {
		return services.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var raw fileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &raw); err != nil {
			return services.Config{}, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return services.Config{}, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	}

	return services.Config{
		FailOnWarning:         raw.FailOnWarning,
		Verbose:               raw.Verbose,
		IgnoreNonCompile:      raw.IgnoreNonCompile,
		OutputXML:             raw.OutputXML,
		OutputJSON:            raw.OutputJSON,
		ScriptableOutput:      raw.ScriptableOutput,
		ScriptableFlag:        raw.ScriptableFlag,
		ForcedUsed:            raw.ForcedUsed,
		IgnoredDependencies:   raw.IgnoredDependencies,
		IgnoredUsedUndeclared: raw.IgnoredUsedUndeclared,
		IgnoredUnusedDeclared: raw.IgnoredUnusedDeclared,
	}, nil
}
