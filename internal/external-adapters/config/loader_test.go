package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "depscope.yaml", `failOnWarning: true
ignoreNonCompile: true
scriptableFlag: "FLAG"
forcedUsed:
  - org.example:reflective
ignoredDependencies:
  - org.example:*
ignoredUsedUndeclaredDependencies:
  - :commons-lang3
ignoredUnusedDeclaredDependencies:
  - :::*-SNAPSHOT
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.FailOnWarning || !cfg.IgnoreNonCompile {
		t.Error("boolean options not loaded")
	}
	if cfg.ScriptableFlag != "FLAG" {
		t.Errorf("ScriptableFlag = %q, want FLAG", cfg.ScriptableFlag)
	}
	if len(cfg.ForcedUsed) != 1 || cfg.ForcedUsed[0] != "org.example:reflective" {
		t.Errorf("ForcedUsed = %v", cfg.ForcedUsed)
	}
	if len(cfg.IgnoredUsedUndeclared) != 1 || cfg.IgnoredUsedUndeclared[0] != ":commons-lang3" {
		t.Errorf("IgnoredUsedUndeclared = %v", cfg.IgnoredUsedUndeclared)
	}
	if len(cfg.IgnoredUnusedDeclared) != 1 || cfg.IgnoredUnusedDeclared[0] != ":::*-SNAPSHOT" {
		t.Errorf("IgnoredUnusedDeclared = %v", cfg.IgnoredUnusedDeclared)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "depscope.toml", `failOnWarning = true
outputXML = true
ignoredDependencies = ["org.example:*", ":junit"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.FailOnWarning || !cfg.OutputXML {
		t.Error("boolean options not loaded")
	}
	if len(cfg.IgnoredDependencies) != 2 {
		t.Errorf("IgnoredDependencies = %v, want 2 entries", cfg.IgnoredDependencies)
	}
}

func TestLoadEmptyFileYieldsZeroConfig(t *testing.T) {
	path := writeConfig(t, "empty.yaml", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FailOnWarning || cfg.Verbose || len(cfg.ForcedUsed) != 0 {
		t.Errorf("empty file should yield the zero config, got %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad yaml", "bad.yaml", "failOnWarning: [unclosed"},
		{"bad toml", "bad.toml", "failOnWarning = "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			if _, err := Load(path); err == nil {
				t.Fatal("Load() should fail on malformed input")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}
