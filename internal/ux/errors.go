package ux

import (
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/tstackhq/tstack-kit/internal/errors"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError analyzes an error and adds contextual suggestions.
// Coded errors already carry their own suggestions and pass through
// untouched.
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	var kitErr *errors.KitError
	if goerrors.As(err, &kitErr) {
		return err
	}
	var list *errors.List
	if goerrors.As(err, &list) {
		return err
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "no such file or directory") {
		if strings.Contains(errMsg, "scaffold.lock.json") {
			return NewErrorWithSuggestion(err,
				"Record the scaffold fingerprint by running 'tstack-kit spec lock'")
		}
		if strings.Contains(errMsg, ".plan.json") {
			return NewErrorWithSuggestion(err,
				"Generate a plan by running 'tstack-kit plan create'")
		}
		if strings.Contains(errMsg, ".tstack") {
			return NewErrorWithSuggestion(err,
				"Initialize the project by running 'tstack-kit new'")
		}
	}

	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check file permissions and ensure you have access to the .tstack directory")
	}

	if strings.Contains(errMsg, "yaml:") {
		return NewErrorWithSuggestion(err,
			"Check the scaffold file for YAML syntax errors (indentation, tabs, unclosed quotes)")
	}

	if strings.Contains(errMsg, "invalid character") && strings.Contains(errMsg, "json") {
		return NewErrorWithSuggestion(err,
			"The plan file appears corrupted. Regenerate it with 'tstack-kit plan create'")
	}

	return err
}

// FormatError enhances an error and prefixes it with operation context.
func FormatError(err error, context string) error {
	if err == nil {
		return nil
	}

	enhanced := EnhanceError(err)
	if context != "" {
		return fmt.Errorf("%s: %w", context, enhanced)
	}
	return enhanced
}
