package errors

import (
	"errors"
	"strings"
)

// IsPathError checks if an error came from path decomposition.
func IsPathError(err error) bool {
	return err != nil && errors.Is(err, ErrOutsideProjectRoot)
}

// IsConfigurationError checks if an error is a validation failure of a
// resolved procedure configuration.
func IsConfigurationError(err error) bool {
	return err != nil && errors.Is(err, ErrInvalidConfiguration)
}

// IsConfigLoadError checks if an error came from loading the project
// configuration file (missing or unparsable).
func IsConfigLoadError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigUnparsable) ||
		errors.Is(err, ErrMissingSnowflakeSection)
}

// IsConnectionError checks if an error is connection-related.
// This includes TLS errors, timeouts, and network connectivity issues.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrConnectionFailed) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	// Network connectivity
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "dial tcp") {
		return true
	}
	// TLS/certificate errors (consistent with WrapConnectionError)
	if strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") {
		return true
	}
	// Timeout errors (consistent with WrapConnectionError)
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}
	return false
}
