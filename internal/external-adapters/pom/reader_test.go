package pom

import (
	"os"
	"path/filepath"
	"testing"
)

func writePOM(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pom.xml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write pom: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	path := writePOM(t, `<?xml version="1.0"?>
<project>
  <groupId>org.example</groupId>
  <artifactId>app</artifactId>
  <version>1.0</version>
  <packaging>war</packaging>
  <build>
    <directory>/builds/app/out</directory>
  </build>
</project>`)

	project, err := NewReader().ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if project.GroupID != "org.example" || project.ArtifactID != "app" || project.Version != "1.0" {
		t.Errorf("coordinates = %s:%s:%s, want org.example:app:1.0", project.GroupID, project.ArtifactID, project.Version)
	}
	if project.Packaging != "war" {
		t.Errorf("Packaging = %q, want war", project.Packaging)
	}
	if project.BuildDir != "/builds/app/out" {
		t.Errorf("BuildDir = %q, want /builds/app/out", project.BuildDir)
	}
	if project.POMPath != path {
		t.Errorf("POMPath = %q, want %q", project.POMPath, path)
	}
}

func TestReadFileParentFallback(t *testing.T) {
	path := writePOM(t, `<?xml version="1.0"?>
<project>
  <parent>
    <groupId>org.example.parent</groupId>
    <artifactId>parent</artifactId>
    <version>7</version>
  </parent>
  <artifactId>child</artifactId>
</project>`)

	project, err := NewReader().ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if project.GroupID != "org.example.parent" {
		t.Errorf("GroupID = %q, want parent groupId", project.GroupID)
	}
	if project.Version != "7" {
		t.Errorf("Version = %q, want parent version", project.Version)
	}
}

func TestReadFileDefaults(t *testing.T) {
	path := writePOM(t, `<project>
  <groupId>org.example</groupId>
  <artifactId>app</artifactId>
  <version>1.0</version>
</project>`)

	project, err := NewReader().ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if project.Packaging != "jar" {
		t.Errorf("Packaging = %q, want jar default", project.Packaging)
	}
	if want := filepath.Join(filepath.Dir(path), "target"); project.BuildDir != want {
		t.Errorf("BuildDir = %q, want %q", project.BuildDir, want)
	}
}

func TestReadFileMissingArtifactID(t *testing.T) {
	path := writePOM(t, `<project><groupId>org.example</groupId></project>`)

	if _, err := NewReader().ReadFile(path); err == nil {
		t.Fatal("ReadFile() should fail without an artifactId")
	}
}

func TestReadFileMalformedXML(t *testing.T) {
	path := writePOM(t, `<project><artifactId>app`)

	if _, err := NewReader().ReadFile(path); err == nil {
		t.Fatal("ReadFile() should fail on malformed XML")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := NewReader().ReadFile(filepath.Join(t.TempDir(), "absent.xml")); err == nil {
		t.Fatal("ReadFile() should fail for a missing POM")
	}
}
