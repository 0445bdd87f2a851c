// Package frontmatter extracts YAML metadata embedded at the top of
// procedure source files.
//
// Two block styles are recognized, both starting on the first non-blank
// line of the file:
//
//	/*
//	comment: Overrides the tree-level comment
//	execute_as: caller
//	*/
//
// for JavaScript sources, and a "---"-fenced block for any language. The
// metadata mapping is merged over the tree-resolved configuration by the
// deploy step, so frontmatter always wins over cascaded and leaf values.
//
// A file without frontmatter yields empty metadata and its full body; a
// leading comment that is not a YAML mapping (license text, prose) is left
// in the body untouched.
package frontmatter

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Result holds the parsed metadata and the remaining source body.
type Result struct {
	// Metadata is the parsed YAML mapping, empty when no frontmatter exists.
	Metadata map[string]any

	// Body is the source text with the frontmatter block removed.
	Body string
}

// Parse splits a procedure source into frontmatter metadata and body.
func Parse(src []byte) *Result {
	text := string(src)
	lines := strings.Split(text, "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) {
		return &Result{Metadata: map[string]any{}, Body: text}
	}

	var closer string
	switch strings.TrimSpace(lines[start]) {
	case "/*":
		closer = "*/"
	case "---":
		closer = "---"
	default:
		return &Result{Metadata: map[string]any{}, Body: text}
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == closer {
			end = i
			break
		}
	}
	if end == -1 {
		// An unterminated block is source text, not metadata.
		return &Result{Metadata: map[string]any{}, Body: text}
	}

	block := strings.Join(lines[start+1:end], "\n")
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return &Result{Metadata: map[string]any{}, Body: text}
	}
	if meta == nil {
		meta = map[string]any{}
	}

	body := strings.Join(lines[end+1:], "\n")
	return &Result{Metadata: meta, Body: strings.TrimLeft(body, "\n")}
}

// ParseFile reads a procedure source file and splits it into frontmatter
// metadata and body.
func ParseFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}
