package snowflake

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sprocketship/sprocketship/config"
)

// Grant is one GRANT USAGE target: a role or user name.
type Grant struct {
	// GranteeType is the upper-cased grantee kind, "ROLE" or "USER".
	GranteeType string
	Grantee     string
}

// Grants extracts the grant_usage mapping from a resolved procedure
// configuration. The mapping associates grantee types (role, user) with
// lists of grantee names. Grantee types come back sorted so statement
// order is deterministic.
func Grants(cfg *config.Resolved) []Grant {
	mapping, ok := cfg.Get("grant_usage").(map[string]any)
	if !ok {
		return nil
	}

	types := make([]string, 0, len(mapping))
	for t := range mapping {
		types = append(types, t)
	}
	sort.Strings(types)

	var grants []Grant
	for _, t := range types {
		grantees, ok := mapping[t].([]any)
		if !ok {
			continue
		}
		for _, g := range grantees {
			grants = append(grants, Grant{
				GranteeType: strings.ToUpper(t),
				Grantee:     fmt.Sprintf("%v", g),
			})
		}
	}
	return grants
}

// GrantStatements builds the GRANT USAGE statements for a procedure from
// its grant_usage mapping. Procedures without grants yield nil.
func GrantStatements(cfg *config.Resolved) []string {
	grants := Grants(cfg)
	if len(grants) == 0 {
		return nil
	}

	procedure := QualifiedName(cfg.GetString("database"), cfg.GetString("schema"), cfg.Name()) +
		ArgumentTypes(cfg.Get("args"))

	statements := make([]string, 0, len(grants))
	for _, g := range grants {
		statements = append(statements, fmt.Sprintf(
			"GRANT USAGE ON PROCEDURE %s TO %s %s",
			procedure, g.GranteeType, QuoteIdentifier(g.Grantee),
		))
	}
	return statements
}

// ArgumentTypes renders a procedure's argument signature for grant
// statements: "(varchar,number)" from the args list, "()" when there are
// no arguments. Each args entry is a mapping with name and type keys.
func ArgumentTypes(args any) string {
	list, ok := args.([]any)
	if !ok || len(list) == 0 {
		return "()"
	}

	types := make([]string, 0, len(list))
	for _, entry := range list {
		arg, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if t, ok := arg["type"]; ok {
			types = append(types, fmt.Sprintf("%v", t))
		}
	}
	if len(types) == 0 {
		return "()"
	}
	return "(" + strings.Join(types, ",") + ")"
}
