package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sprocketship/sprocketship/config"
)

func resolvedFixture(t *testing.T, dir string, fields map[string]any) *config.Resolved {
	t.Helper()
	resolver := config.NewResolver(config.Tree{}, dir)
	resolved, err := resolver.Resolve(filepath.Join(dir, "procedures", "create_user.js"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	resolved.MergeOverrides(config.SourceLeaf, fields)
	return resolved
}

func TestProcedure_JavaScript(t *testing.T) {
	dir := t.TempDir()
	cfg := resolvedFixture(t, dir, map[string]any{
		"database":   "dev",
		"schema":     "admin",
		"returns":    "varchar",
		"language":   "javascript",
		"execute_as": "owner",
		"args": []any{
			map[string]any{"name": "user_name", "type": "varchar"},
			map[string]any{"name": "age", "type": "number"},
		},
	})

	got, err := NewLoader(dir).Procedure(cfg, "var x = 1;\nreturn x;")
	if err != nil {
		t.Fatalf("Procedure() error = %v", err)
	}

	wantLines := []string{
		`CREATE OR REPLACE PROCEDURE dev.admin.create_user("USER_NAME" VARCHAR, "AGE" NUMBER)`,
		"RETURNS varchar",
		"LANGUAGE JAVASCRIPT",
		"EXECUTE AS OWNER",
		"AS",
		"$$",
		"var x = 1;",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("rendered SQL missing %q:\n%s", line, got)
		}
	}
	if strings.Count(got, "$$") != 2 {
		t.Errorf("rendered SQL has %d body delimiters, want 2:\n%s", strings.Count(got, "$$"), got)
	}
	if strings.Contains(got, "COMMENT") {
		t.Errorf("rendered SQL has a COMMENT clause without a comment field:\n%s", got)
	}
}

func TestProcedure_NoArguments(t *testing.T) {
	dir := t.TempDir()
	cfg := resolvedFixture(t, dir, map[string]any{
		"database":   "dev",
		"schema":     "admin",
		"returns":    "varchar",
		"language":   "javascript",
		"execute_as": "caller",
	})

	got, err := NewLoader(dir).Procedure(cfg, "return 1;")
	if err != nil {
		t.Fatalf("Procedure() error = %v", err)
	}
	if !strings.Contains(got, "CREATE OR REPLACE PROCEDURE dev.admin.create_user()") {
		t.Errorf("rendered SQL missing empty argument list:\n%s", got)
	}
	if !strings.Contains(got, "EXECUTE AS CALLER") {
		t.Errorf("rendered SQL missing EXECUTE AS CALLER:\n%s", got)
	}
}

func TestProcedure_Comment(t *testing.T) {
	dir := t.TempDir()
	cfg := resolvedFixture(t, dir, map[string]any{
		"database":   "dev",
		"schema":     "admin",
		"returns":    "varchar",
		"language":   "javascript",
		"execute_as": "owner",
		"comment":    "creates a user; don't run twice",
	})

	got, err := NewLoader(dir).Procedure(cfg, "return 1;")
	if err != nil {
		t.Fatalf("Procedure() error = %v", err)
	}
	want := `COMMENT = 'creates a user; don''t run twice'`
	if !strings.Contains(got, want) {
		t.Errorf("rendered SQL missing %q:\n%s", want, got)
	}
}

func TestProcedure_Python(t *testing.T) {
	dir := t.TempDir()
	cfg := resolvedFixture(t, dir, map[string]any{
		"database":   "dev",
		"schema":     "etl",
		"returns":    "variant",
		"language":   "python",
		"execute_as": "owner",
	})

	got, err := NewLoader(dir).Procedure(cfg, "def main(session):\n    return 1")
	if err != nil {
		t.Fatalf("Procedure() error = %v", err)
	}

	wantLines := []string{
		"LANGUAGE PYTHON",
		"RUNTIME_VERSION = '3.11'",
		"PACKAGES = ('snowflake-snowpark-python')",
		"HANDLER = 'main'",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("rendered SQL missing %q:\n%s", line, got)
		}
	}
}

func TestProcedure_PythonOverrides(t *testing.T) {
	dir := t.TempDir()
	cfg := resolvedFixture(t, dir, map[string]any{
		"database":        "dev",
		"schema":          "etl",
		"returns":         "variant",
		"language":        "python",
		"execute_as":      "owner",
		"runtime_version": "3.10",
		"handler":         "run",
		"packages":        []any{"pandas"},
	})

	got, err := NewLoader(dir).Procedure(cfg, "def run(session):\n    return 1")
	if err != nil {
		t.Fatalf("Procedure() error = %v", err)
	}
	if !strings.Contains(got, "RUNTIME_VERSION = '3.10'") {
		t.Errorf("rendered SQL missing runtime override:\n%s", got)
	}
	if !strings.Contains(got, "HANDLER = 'run'") {
		t.Errorf("rendered SQL missing handler override:\n%s", got)
	}
	if !strings.Contains(got, "PACKAGES = ('snowflake-snowpark-python', 'pandas')") {
		t.Errorf("rendered SQL missing package list:\n%s", got)
	}
}

func TestProcedure_UnknownLanguage(t *testing.T) {
	dir := t.TempDir()
	cfg := resolvedFixture(t, dir, map[string]any{
		"database":   "dev",
		"schema":     "admin",
		"returns":    "varchar",
		"language":   "scala",
		"execute_as": "owner",
	})

	if _, err := NewLoader(dir).Procedure(cfg, "x"); err == nil {
		t.Fatal("Procedure() error = nil, want error for unknown language")
	}
}

func TestLoader_ProjectOverride(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, ".sprocketship", "templates")
	if err := os.MkdirAll(override, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	custom := "-- custom template for {{.name}}\n"
	if err := os.WriteFile(filepath.Join(override, "javascript.sql.tmpl"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	cfg := resolvedFixture(t, dir, map[string]any{"language": "javascript"})
	got, err := NewLoader(dir).Procedure(cfg, "x")
	if err != nil {
		t.Fatalf("Procedure() error = %v", err)
	}
	if !strings.Contains(got, "-- custom template for create_user") {
		t.Errorf("rendered output = %q, want the project override template", got)
	}
}

func TestLoader_Exists(t *testing.T) {
	loader := NewLoader(t.TempDir())
	if !loader.Exists("javascript") {
		t.Error("Exists(javascript) = false, want true")
	}
	if !loader.Exists("python") {
		t.Error("Exists(python) = false, want true")
	}
	if loader.Exists("scala") {
		t.Error("Exists(scala) = true, want false")
	}
}

func TestArgList_BadEntry(t *testing.T) {
	if _, err := argList([]any{"not-a-mapping"}); err == nil {
		t.Fatal("argList() error = nil, want error for non-mapping entry")
	}
	if _, err := argList([]any{map[string]any{"name": "x"}}); err == nil {
		t.Fatal("argList() error = nil, want error for entry without type")
	}
}
