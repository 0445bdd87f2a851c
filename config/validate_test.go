package config

import (
	"strings"
	"testing"

	"github.com/sprocketship/sprocketship/errors"
)

func resolvedWith(fields map[string]any) *Resolved {
	resolved := &Resolved{
		values:  make(map[string]any),
		sources: make(map[string]Source),
	}
	resolved.set("path", "test.js", SourceIdentity)
	resolved.set("name", "test", SourceIdentity)
	resolved.MergeOverrides(SourceLeaf, fields)
	return resolved
}

func TestValidate_ValidConfigPasses(t *testing.T) {
	cfg := resolvedWith(map[string]any{
		"database":   "test_db",
		"schema":     "test_schema",
		"returns":    "varchar",
		"language":   "javascript",
		"execute_as": "owner",
	})

	if err := Validate(cfg, "test"); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestValidate_NullFieldTreatedAsMissing(t *testing.T) {
	cfg := resolvedWith(map[string]any{
		"database":   "d",
		"schema":     "s",
		"returns":    nil,
		"language":   "javascript",
		"execute_as": "owner",
	})

	err := Validate(cfg, "test")
	if err == nil {
		t.Fatal("expected an error for null returns")
	}
	if !errors.IsConfigurationError(err) {
		t.Errorf("IsConfigurationError = false for %v", err)
	}
	if !strings.Contains(err.Error(), "[E002]") {
		t.Errorf("error %q missing E002 code", err.Error())
	}
	if !strings.Contains(err.Error(), "returns") {
		t.Errorf("error %q should list the missing field", err.Error())
	}
}

func TestValidate_AllMissingFieldsReported(t *testing.T) {
	cfg := resolvedWith(map[string]any{"database": "test_db"})

	err := Validate(cfg, "test")
	if err == nil {
		t.Fatal("expected an error")
	}

	msg := err.Error()
	for _, field := range []string{"schema", "returns", "language", "execute_as"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error should report missing field %q:\n%s", field, msg)
		}
	}
}

func TestValidate_UnsupportedLanguage(t *testing.T) {
	cfg := resolvedWith(map[string]any{
		"database":   "test_db",
		"schema":     "test_schema",
		"returns":    "varchar",
		"language":   "ruby",
		"execute_as": "owner",
	})

	err := Validate(cfg, "test")
	if err == nil {
		t.Fatal("expected an error for unsupported language")
	}

	msg := err.Error()
	if !strings.Contains(msg, "[E003]") {
		t.Errorf("error %q missing E003 code", msg)
	}
	if !strings.Contains(msg, "Unsupported language") || !strings.Contains(msg, "ruby") {
		t.Errorf("error should name the offending language:\n%s", msg)
	}
	if !strings.Contains(msg, "javascript") || !strings.Contains(msg, "python") {
		t.Errorf("error should list the supported languages:\n%s", msg)
	}
}

func TestValidate_InvalidExecuteAs(t *testing.T) {
	cfg := resolvedWith(map[string]any{
		"database":   "test_db",
		"schema":     "test_schema",
		"returns":    "varchar",
		"language":   "javascript",
		"execute_as": "admin",
	})

	err := Validate(cfg, "test")
	if err == nil {
		t.Fatal("expected an error for invalid execute_as")
	}

	msg := err.Error()
	if !strings.Contains(msg, "[E003]") {
		t.Errorf("error %q missing E003 code", msg)
	}
	if !strings.Contains(msg, "Invalid execute_as value") || !strings.Contains(msg, "admin") {
		t.Errorf("error should name the offending value:\n%s", msg)
	}
}

func TestValidate_RemediationHints(t *testing.T) {
	cfg := resolvedWith(map[string]any{
		"database": "test_db",
		"schema":   "test_schema",
	})

	err := Validate(cfg, "test_proc")
	if err == nil {
		t.Fatal("expected an error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "Fix option 1") || !strings.Contains(msg, "frontmatter") {
		t.Errorf("error should suggest a frontmatter fix:\n%s", msg)
	}
	if !strings.Contains(msg, "Fix option 2") || !strings.Contains(msg, ".sprocketship.yml") {
		t.Errorf("error should suggest a config file fix:\n%s", msg)
	}
	if !strings.Contains(msg, "'+' prefix") {
		t.Errorf("error should mention cascading defaults:\n%s", msg)
	}
	if !strings.Contains(msg, "test_proc") {
		t.Errorf("error should carry the display name:\n%s", msg)
	}
}
