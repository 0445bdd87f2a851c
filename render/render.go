package render

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/sprocketship/sprocketship/config"
)

// embeddedTemplates holds the default statement templates compiled into the
// binary, one per supported language.
//
//go:embed templates/*.sql.tmpl
var embeddedTemplates embed.FS

// Loader loads and renders statement templates.
type Loader struct {
	dirs    []string                      // Directories to search
	cache   map[string]*template.Template // Cached templates
	funcMap template.FuncMap              // Template functions
}

// NewLoader creates a template loader for the given project directory.
// Templates are resolved in order:
// 1. .sprocketship/templates/ in the project
// 2. Embedded defaults in the sprocketship binary
func NewLoader(projectDir string) *Loader {
	return &Loader{
		dirs: []string{
			filepath.Join(projectDir, ".sprocketship", "templates"),
		},
		cache:   make(map[string]*template.Template),
		funcMap: defaultFuncMap(),
	}
}

// AddSearchDir adds a directory to search for templates, ahead of the
// existing search path.
func (l *Loader) AddSearchDir(dir string) {
	l.dirs = append([]string{dir}, l.dirs...)
}

// AddFunc adds a custom template function.
func (l *Loader) AddFunc(name string, fn any) {
	l.funcMap[name] = fn
}

// Procedure renders the full CREATE OR REPLACE PROCEDURE statement for a
// resolved configuration and procedure body. The template is picked by the
// procedure's language field.
func (l *Loader) Procedure(cfg *config.Resolved, body string) (string, error) {
	data := cfg.All()
	data["procedure_definition"] = body
	return l.Render(cfg.GetString("language"), data)
}

// Render renders the named template with the given data.
func (l *Loader) Render(name string, data map[string]any) (string, error) {
	tmpl, err := l.getTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Exists checks if a template exists for the given name.
func (l *Loader) Exists(name string) bool {
	_, err := l.loadRaw(name)
	return err == nil
}

// getTemplate loads and caches a template.
func (l *Loader) getTemplate(name string) (*template.Template, error) {
	if tmpl, ok := l.cache[name]; ok {
		return tmpl, nil
	}

	content, err := l.loadRaw(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(l.funcMap).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}

	l.cache[name] = tmpl
	return tmpl, nil
}

// loadRaw loads raw template content without parsing.
func (l *Loader) loadRaw(name string) (string, error) {
	filename := name + ".sql.tmpl"

	for _, dir := range l.dirs {
		path := filepath.Join(dir, filename)
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data), nil
		}
	}

	data, err := embeddedTemplates.ReadFile("templates/" + filename)
	if err != nil {
		return "", fmt.Errorf("no template for language: %s", name)
	}
	return string(data), nil
}

// ClearCache clears the template cache.
func (l *Loader) ClearCache() {
	l.cache = make(map[string]*template.Template)
}

// argList renders a procedure argument list: each args entry is a mapping
// with name and type keys, rendered as `"NAME" TYPE` with the name quoted
// and both parts upper-cased.
func argList(args any) (string, error) {
	list, ok := args.([]any)
	if !ok || len(list) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(list))
	for _, entry := range list {
		arg, ok := entry.(map[string]any)
		if !ok {
			return "", fmt.Errorf("argument entry is %T, need a mapping with name and type", entry)
		}
		name, nameOK := arg["name"]
		typ, typOK := arg["type"]
		if !nameOK || !typOK {
			return "", fmt.Errorf("argument entry %v needs both name and type", arg)
		}
		quoted := strings.ReplaceAll(strings.ToUpper(fmt.Sprintf("%v", name)), `"`, `""`)
		parts = append(parts, fmt.Sprintf(`"%s" %s`, quoted, strings.ToUpper(fmt.Sprintf("%v", typ))))
	}
	return strings.Join(parts, ", "), nil
}

// pkgList renders a PACKAGES clause list of single-quoted package names.
// The snowpark package is always present.
func pkgList(packages any) string {
	names := []string{"snowflake-snowpark-python"}
	if list, ok := packages.([]any); ok {
		for _, p := range list {
			name := fmt.Sprintf("%v", p)
			if name != "snowflake-snowpark-python" {
				names = append(names, name)
			}
		}
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + strings.ReplaceAll(n, "'", "''") + "'"
	}
	return strings.Join(quoted, ", ")
}
