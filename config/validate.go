package config

import (
	"fmt"
	"strings"

	"github.com/sprocketship/sprocketship/errors"
)

// RequiredFields must be present and non-null in every resolved procedure
// configuration before it can be rendered.
var RequiredFields = []string{"database", "schema", "returns", "language", "execute_as"}

// SupportedLanguages are the accepted values for the language field.
var SupportedLanguages = []string{"javascript", "python"}

// ValidExecuteAs are the accepted values for the execute_as field.
var ValidExecuteAs = []string{"owner", "caller"}

// Validate checks a resolved configuration for required fields and
// enumerated-value constraints. displayName identifies the procedure in
// error messages. Missing fields are collected and reported together, not
// fail-fast.
func Validate(cfg *Resolved, displayName string) error {
	var missing []string
	for _, field := range RequiredFields {
		if !cfg.Has(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return missingFieldsError(displayName, missing)
	}

	if language := cfg.GetString("language"); !contains(SupportedLanguages, language) {
		return &errors.CLIError{
			Err:     errors.ErrInvalidConfiguration,
			Code:    errors.CodeInvalidValue,
			Message: fmt.Sprintf("Error in procedure: %s", displayName),
			Details: fmt.Sprintf("Unsupported language: '%s'\n\nSupported languages:\n  - %s",
				language, strings.Join(SupportedLanguages, "\n  - ")),
			Suggestion: "Fix: Update language field to a supported value:\n  language: javascript",
		}
	}

	if executeAs := cfg.GetString("execute_as"); !contains(ValidExecuteAs, executeAs) {
		return &errors.CLIError{
			Err:     errors.ErrInvalidConfiguration,
			Code:    errors.CodeInvalidValue,
			Message: fmt.Sprintf("Error in procedure: %s", displayName),
			Details: fmt.Sprintf("Invalid execute_as value: '%s'\n\nValid values:\n  - owner  (procedure runs with owner's privileges)\n  - caller (procedure runs with caller's privileges)",
				executeAs),
			Suggestion: "Fix: Update execute_as field:\n  execute_as: owner",
		}
	}

	return nil
}

func missingFieldsError(displayName string, missing []string) error {
	examples := make([]string, len(missing))
	for i, field := range missing {
		examples[i] = field + ": " + exampleValue(field)
	}

	var details strings.Builder
	details.WriteString("Missing required configuration fields:\n  - ")
	details.WriteString(strings.Join(missing, "\n  - "))

	var suggestion strings.Builder
	suggestion.WriteString("Fix option 1 - Add to file frontmatter:\n  /*\n  ")
	suggestion.WriteString(strings.Join(examples, "\n  "))
	suggestion.WriteString("\n  */\n\n")
	suggestion.WriteString("Fix option 2 - Add to .sprocketship.yml:\n  procedures:\n    ")
	suggestion.WriteString(displayName)
	suggestion.WriteString(":\n      ")
	suggestion.WriteString(strings.Join(examples, "\n      "))
	suggestion.WriteString("\n\nFor cascading defaults (applies to all procedures), use '+' prefix:\n  procedures:\n    +")
	suggestion.WriteString(examples[0])

	return &errors.CLIError{
		Err:        errors.ErrInvalidConfiguration,
		Code:       errors.CodeMissingFields,
		Message:    fmt.Sprintf("Error in procedure: %s", displayName),
		Details:    details.String(),
		Suggestion: suggestion.String(),
	}
}

func exampleValue(field string) string {
	switch field {
	case "returns":
		return "varchar"
	case "language":
		return "javascript"
	case "execute_as":
		return "owner"
	default:
		return "YOUR_" + strings.ToUpper(field) + "_NAME"
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
