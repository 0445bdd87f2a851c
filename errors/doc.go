// Package errors provides CLI error patterns with user-friendly messaging.
//
// Core types:
//   - CLIError: Wraps errors with a stable code, message, suggestion, and details
//
// Sentinel errors for common scenarios:
//   - ErrOutsideProjectRoot: Procedure file is not under the project root
//   - ErrInvalidConfiguration: Resolved procedure config failed validation
//   - ErrConfigNotFound: No .sprocketship.yml in the project directory
//   - ErrConfigUnparsable: .sprocketship.yml is not valid YAML
//   - ErrMissingSnowflakeSection: Config has no snowflake connection section
//   - ErrConnectionFailed: Warehouse is unreachable
//
// Stable error codes cross-reference distinct failure situations:
//   - E001: file path outside project root
//   - E002: missing required configuration fields
//   - E003: invalid enumerated configuration value
//   - E004: configuration file missing or unparsable
//   - E005: warehouse connection failure
//
// Example usage:
//
//	if err := config.Validate(resolved, name); err != nil {
//	    var cliErr *errors.CLIError
//	    if stderrors.As(err, &cliErr) {
//	        fmt.Println(cliErr.Code) // "E002"
//	    }
//	}
//
//	// Wrap a driver error with connection guidance
//	if err := session.Ping(ctx); err != nil {
//	    return errors.WrapConnectionError(err, account)
//	}
package errors
