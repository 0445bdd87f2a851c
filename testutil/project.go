// Package testutil provides utilities for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Project builds a temporary sprocketship project directory for tests:
// a .sprocketship.yml plus nested procedure source files. The directory is
// cleaned up when the test ends.
type Project struct {
	t   *testing.T
	Dir string
}

// NewProject creates an empty project in a temporary directory.
func NewProject(t *testing.T) *Project {
	t.Helper()
	return &Project{t: t, Dir: t.TempDir()}
}

// WithConfig writes the project's .sprocketship.yml.
func (p *Project) WithConfig(yaml string) *Project {
	p.t.Helper()
	p.write(".sprocketship.yml", yaml)
	return p
}

// WithProcedure writes a procedure source file at the given path relative
// to the project directory, creating intermediate directories.
func (p *Project) WithProcedure(relPath, contents string) *Project {
	p.t.Helper()
	p.write(relPath, contents)
	return p
}

// Path joins path elements onto the project directory.
func (p *Project) Path(elem ...string) string {
	return filepath.Join(append([]string{p.Dir}, elem...)...)
}

// ReadFile reads a file relative to the project directory.
func (p *Project) ReadFile(relPath string) string {
	p.t.Helper()
	data, err := os.ReadFile(p.Path(relPath))
	if err != nil {
		p.t.Fatalf("read %s: %v", relPath, err)
	}
	return string(data)
}

func (p *Project) write(relPath, contents string) {
	p.t.Helper()
	path := p.Path(relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		p.t.Fatalf("create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		p.t.Fatalf("write %s: %v", relPath, err)
	}
}
