package errors

import "errors"

// Common deployment errors with actionable guidance.
var (
	// ErrOutsideProjectRoot indicates a procedure file does not live under the project root.
	ErrOutsideProjectRoot = errors.New("file outside project root")

	// ErrInvalidConfiguration indicates a resolved procedure config failed validation.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrConfigNotFound indicates the project has no .sprocketship.yml.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigUnparsable indicates the configuration file is not valid YAML.
	ErrConfigUnparsable = errors.New("configuration file unparsable")

	// ErrMissingSnowflakeSection indicates the config has no snowflake section.
	ErrMissingSnowflakeSection = errors.New("missing snowflake section")

	// ErrConnectionFailed indicates the warehouse is unreachable.
	ErrConnectionFailed = errors.New("connection failed")
)

// Stable error codes for cross-referencing failure situations.
const (
	CodePathError     = "E001"
	CodeMissingFields = "E002"
	CodeInvalidValue  = "E003"
	CodeConfigLoad    = "E004"
	CodeConnection    = "E005"
)
