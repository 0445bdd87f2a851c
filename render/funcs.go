package render

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultFuncMap returns the default template functions.
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"join":     strings.Join,
		"split":    strings.Split,
		"trim":     strings.TrimSpace,
		"upper":    upperString,
		"lower":    lowerString,
		"title":    cases.Title(language.English).String,
		"contains": strings.Contains,
		"replace":  strings.ReplaceAll,
		"default":  defaultValue,
		"ident":    quoteIdent,
		"sqlstr":   escapeSQLString,
		"arglist":  argList,
		"pkglist":  pkgList,
	}
}

func upperString(v any) string {
	return strings.ToUpper(fmt.Sprintf("%v", v))
}

func lowerString(v any) string {
	return strings.ToLower(fmt.Sprintf("%v", v))
}

// defaultValue returns the default if value is empty.
func defaultValue(defaultVal, value any) any {
	if value == nil {
		return defaultVal
	}
	if s, ok := value.(string); ok && s == "" {
		return defaultVal
	}
	return value
}

// quoteIdent quotes an identifier per Snowflake rules, doubling embedded
// double quotes.
func quoteIdent(v any) string {
	return `"` + strings.ReplaceAll(fmt.Sprintf("%v", v), `"`, `""`) + `"`
}

// escapeSQLString escapes a value for inclusion in a single-quoted SQL
// string literal.
func escapeSQLString(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "'", "''")
}
