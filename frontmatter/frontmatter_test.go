package frontmatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_CommentBlock(t *testing.T) {
	src := `/*
comment: Drops a database - overriding config in frontmatter
execute_as: caller
*/
var name = DATABASE_NAME;
return name;
`
	result := Parse([]byte(src))

	if got := result.Metadata["comment"]; got != "Drops a database - overriding config in frontmatter" {
		t.Errorf("comment = %v", got)
	}
	if got := result.Metadata["execute_as"]; got != "caller" {
		t.Errorf("execute_as = %v, want %q", got, "caller")
	}
	if strings.Contains(result.Body, "*/") {
		t.Errorf("body should not contain the frontmatter block:\n%s", result.Body)
	}
	if !strings.HasPrefix(result.Body, "var name = DATABASE_NAME;") {
		t.Errorf("body = %q", result.Body)
	}
}

func TestParse_DashBlock(t *testing.T) {
	src := `---
handler: run
packages:
  - snowflake-snowpark-python
---
def run(session):
    return "ok"
`
	result := Parse([]byte(src))

	if got := result.Metadata["handler"]; got != "run" {
		t.Errorf("handler = %v, want %q", got, "run")
	}
	packages, ok := result.Metadata["packages"].([]any)
	if !ok || len(packages) != 1 {
		t.Fatalf("packages = %v", result.Metadata["packages"])
	}
	if !strings.HasPrefix(result.Body, "def run(session):") {
		t.Errorf("body = %q", result.Body)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	src := "var x = 1;\nreturn x;\n"

	result := Parse([]byte(src))

	if len(result.Metadata) != 0 {
		t.Errorf("metadata = %v, want empty", result.Metadata)
	}
	if result.Body != src {
		t.Errorf("body = %q, want full source", result.Body)
	}
}

func TestParse_LeadingBlankLines(t *testing.T) {
	src := "\n\n/*\ncomment: hi\n*/\nreturn 1;\n"

	result := Parse([]byte(src))

	if got := result.Metadata["comment"]; got != "hi" {
		t.Errorf("comment = %v, want %q", got, "hi")
	}
}

func TestParse_LicenseCommentLeftInBody(t *testing.T) {
	src := `/*
Copyright (c) 2024 Example Corp. All rights reserved.
*/
return 1;
`
	result := Parse([]byte(src))

	if len(result.Metadata) != 0 {
		t.Errorf("metadata = %v, want empty for a prose comment", result.Metadata)
	}
	if !strings.Contains(result.Body, "Copyright") {
		t.Errorf("prose comment should stay in the body:\n%s", result.Body)
	}
}

func TestParse_UnterminatedBlock(t *testing.T) {
	src := "/*\ncomment: never closed\nreturn 1;\n"

	result := Parse([]byte(src))

	if len(result.Metadata) != 0 {
		t.Errorf("metadata = %v, want empty for an unterminated block", result.Metadata)
	}
	if result.Body != src {
		t.Errorf("body = %q, want full source", result.Body)
	}
}

func TestParse_EmptyBlock(t *testing.T) {
	src := "/*\n*/\nreturn 1;\n"

	result := Parse([]byte(src))

	if len(result.Metadata) != 0 {
		t.Errorf("metadata = %v, want empty", result.Metadata)
	}
	if !strings.HasPrefix(result.Body, "return 1;") {
		t.Errorf("body = %q", result.Body)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proc.js")
	src := "/*\nreturns: varchar\n*/\nreturn 'ok';\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if got := result.Metadata["returns"]; got != "varchar" {
		t.Errorf("returns = %v, want %q", got, "varchar")
	}
}

func TestParseFile_Missing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "absent.js")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
