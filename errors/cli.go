package errors

import (
	"fmt"
	"strings"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Code is a stable error code for cross-referencing (e.g., "E002")
	Code string

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	if e.Code != "" {
		sb.WriteString("[")
		sb.WriteString(e.Code)
		sb.WriteString("] ")
	}
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewPathError creates an error for a procedure file outside the project root.
func NewPathError(path, projectDir string) error {
	return &CLIError{
		Err:        ErrOutsideProjectRoot,
		Code:       CodePathError,
		Message:    fmt.Sprintf("Procedure file %s is not under the project directory %s.", path, projectDir),
		Suggestion: "Move the file under the project directory or pass the correct project directory.",
	}
}

// NewConfigNotFoundError creates an error for a project with no config file.
func NewConfigNotFoundError(configPath string) error {
	return &CLIError{
		Err:        ErrConfigNotFound,
		Code:       CodeConfigLoad,
		Message:    fmt.Sprintf("Configuration file not found: %s", configPath),
		Suggestion: "Run 'sprocketship init' to create a starter .sprocketship.yml.",
	}
}

// NewConfigUnparsableError creates an error for a config file with invalid YAML.
func NewConfigUnparsableError(configPath string, err error) error {
	return &CLIError{
		Err:        ErrConfigUnparsable,
		Code:       CodeConfigLoad,
		Message:    fmt.Sprintf("Failed to load configuration from %s", configPath),
		Details:    err.Error(),
		Suggestion: "Check the file for YAML syntax errors.",
	}
}

// NewMissingSnowflakeSectionError creates an error for a config without
// connection settings.
func NewMissingSnowflakeSectionError(configPath string) error {
	return &CLIError{
		Err:        ErrMissingSnowflakeSection,
		Code:       CodeConfigLoad,
		Message:    fmt.Sprintf("Missing 'snowflake' section in %s", configPath),
		Suggestion: "Add a snowflake section with account, user, role, and warehouse settings.",
	}
}

// WrapConnectionError wraps warehouse connection errors with helpful guidance.
func WrapConnectionError(err error, account string) error {
	if err == nil {
		return nil
	}

	errStr := strings.ToLower(err.Error())

	// Check for connection refused / unreachable host
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "dial tcp") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Code:       CodeConnection,
			Message:    fmt.Sprintf("Failed to connect to Snowflake account %s", account),
			Suggestion: "Check that:\n  - The account identifier is correct\n  - Your network connection is working",
		}
	}

	// Check for TLS/certificate errors
	if strings.Contains(errStr, "certificate") || strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Code:       CodeConnection,
			Message:    fmt.Sprintf("TLS/certificate error connecting to Snowflake account %s", account),
			Details:    err.Error(),
			Suggestion: "Check that no proxy is intercepting the connection.",
		}
	}

	// Check for timeout
	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Code:       CodeConnection,
			Message:    fmt.Sprintf("Connection to Snowflake account %s timed out", account),
			Suggestion: "The warehouse may be suspended or unreachable.\nTry again in a moment.",
		}
	}

	// Check for rejected credentials (driver error codes 390100/390144 and friends)
	if strings.Contains(errStr, "incorrect username or password") ||
		strings.Contains(errStr, "390100") ||
		strings.Contains(errStr, "jwt token is invalid") ||
		strings.Contains(errStr, "authentication") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Code:       CodeConnection,
			Message:    "Snowflake rejected the supplied credentials.",
			Details:    err.Error(),
			Suggestion: "Check the user, authenticator, and credentials in the snowflake section.",
		}
	}

	return &CLIError{
		Err:        ErrConnectionFailed,
		Code:       CodeConnection,
		Message:    fmt.Sprintf("Failed to connect to Snowflake account %s", account),
		Details:    err.Error(),
		Suggestion: "Check the snowflake section of .sprocketship.yml.",
	}
}
