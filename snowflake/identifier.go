package snowflake

import (
	"fmt"
	"strings"
)

// QuoteIdentifier quotes a Snowflake identifier (database, schema, role,
// procedure name) following Snowflake's quoting rules: wrapped in double
// quotes with embedded double quotes doubled.
func QuoteIdentifier(identifier string) string {
	return `"` + strings.ReplaceAll(identifier, `"`, `""`) + `"`
}

// EscapeString escapes a string literal for inclusion in single quotes.
func EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// UseRoleStatement builds the role-switch statement executed before each
// procedure deployment. Roles are upper-cased and quoted.
func UseRoleStatement(role string) string {
	return fmt.Sprintf("USE ROLE %s", QuoteIdentifier(strings.ToUpper(role)))
}

// QualifiedName builds the quoted database.schema.name identifier used in
// grant statements.
func QualifiedName(database, schema, name string) string {
	return QuoteIdentifier(database) + "." + QuoteIdentifier(schema) + "." + QuoteIdentifier(name)
}
