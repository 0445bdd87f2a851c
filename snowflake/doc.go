// Package snowflake provides warehouse access for procedure deployment.
//
// Core pieces:
//   - ConnectionConfig: Connection settings from the snowflake section of
//     .sprocketship.yml (password, key-pair, or OAuth authentication)
//   - Session: A live warehouse session implementing Executor
//   - Executor: The single-method interface deployment runs against, so
//     tests never need a warehouse
//   - GrantStatements: GRANT USAGE statement generation from grant_usage
//   - QuoteIdentifier / UseRoleStatement: Identifier quoting per Snowflake
//     rules
//
// Key-pair authentication signs an RS256 JWT whose issuer embeds the
// public-key fingerprint, the scheme Snowflake's SQL REST API expects; the
// same key is handed to the gosnowflake driver for session authentication.
//
// Example usage:
//
//	cfg, err := snowflake.ConnectionFromTree(tree, configPath)
//	session, err := snowflake.Open(ctx, cfg, snowflake.WithQueryTag("sprocketship/"+runID))
//	defer session.Close()
//	err = session.ExecContext(ctx, snowflake.UseRoleStatement("sysadmin"))
package snowflake
