package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Naming errors (NAME-001 to NAME-099)
	ErrCodeNameEmpty         ErrorCode = "NAME-001"
	ErrCodeNameNotAlphabetic ErrorCode = "NAME-002"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigAuthUnknown         ErrorCode = "CONFIG-001"
	ErrCodeConfigRolesRequired       ErrorCode = "CONFIG-002"
	ErrCodeConfigOwnershipFieldEmpty ErrorCode = "CONFIG-003"
	ErrCodeConfigRouteConflict       ErrorCode = "CONFIG-004"
	ErrCodeConfigHookUnknown         ErrorCode = "CONFIG-005"
	ErrCodeConfigRouteUnknown        ErrorCode = "CONFIG-006"

	// Plan errors (PLAN-001 to PLAN-099)
	ErrCodePlanNotFound       ErrorCode = "PLAN-001"
	ErrCodePlanInvalid        ErrorCode = "PLAN-002"
	ErrCodePlanMissingDep     ErrorCode = "PLAN-003"
	ErrCodePlanCyclicDep      ErrorCode = "PLAN-004"
	ErrCodePlanOwnershipField ErrorCode = "PLAN-005"
	ErrCodePlanAdminRoles     ErrorCode = "PLAN-006"
	ErrCodePlanDriftDetected  ErrorCode = "PLAN-007"

	// Scaffold file errors (SCAFFOLD-001 to SCAFFOLD-099)
	ErrCodeScaffoldNotFound     ErrorCode = "SCAFFOLD-001"
	ErrCodeScaffoldLockNotFound ErrorCode = "SCAFFOLD-002"
	ErrCodeScaffoldLockStale    ErrorCode = "SCAFFOLD-003"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeFileUnmarshal   ErrorCode = "IO-004"
	ErrCodeFileMarshal     ErrorCode = "IO-005"
)

// KitError represents an enhanced error with code, suggestions, and documentation
type KitError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *KitError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *KitError) Unwrap() error {
	return e.Cause
}

// New creates a new KitError
func New(code ErrorCode, message string) *KitError {
	return &KitError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new KitError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *KitError {
	return &KitError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *KitError) WithSuggestion(suggestion string) *KitError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *KitError) WithSuggestions(suggestions ...string) *KitError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *KitError) WithDocs(url string) *KitError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewInvalidIdentifierError creates an invalid entity name error
func NewInvalidIdentifierError(name string, reason string) *KitError {
	code := ErrCodeNameNotAlphabetic
	if strings.TrimSpace(name) == "" {
		code = ErrCodeNameEmpty
	}
	return New(code, fmt.Sprintf("invalid entity name %q: %s", name, reason)).
		WithSuggestion("Use a singular, alphabetic entity name such as 'article' or 'siteSetting'").
		WithDocs("https://github.com/tstackhq/tstack-kit#entity-names")
}

// NewRouteConflictError creates a public/disabled route conflict error
func NewRouteConflictError(route string) *KitError {
	return New(ErrCodeConfigRouteConflict, fmt.Sprintf("route %q is listed as both public and disabled", route)).
		WithSuggestion("Remove the route from either --public-routes or --disabled-routes").
		WithSuggestion("A disabled route is never emitted, so marking it public has no meaning").
		WithDocs("https://github.com/tstackhq/tstack-kit#route-configuration")
}

// NewRolesRequiredError creates a role-auth-without-roles error
func NewRolesRequiredError() *KitError {
	return New(ErrCodeConfigRolesRequired, "auth type 'role' requires at least one role").
		WithSuggestion("Pass the allowed roles with --roles, e.g. --roles admin,editor").
		WithSuggestion("Use --auth none if the entity needs no authorization").
		WithDocs("https://github.com/tstackhq/tstack-kit#authorization")
}

// NewScaffoldNotFoundError creates a scaffold file not found error
func NewScaffoldNotFoundError(path string) *KitError {
	return New(ErrCodeScaffoldNotFound, fmt.Sprintf("scaffold file not found: %s", path)).
		WithSuggestion("Run 'tstack-kit new' to create a scaffold interactively").
		WithSuggestion("Check if the file path is correct").
		WithDocs("https://github.com/tstackhq/tstack-kit#scaffold-files")
}

// NewPlanNotFoundError creates a plan file not found error
func NewPlanNotFoundError(path string) *KitError {
	return New(ErrCodePlanNotFound, fmt.Sprintf("plan file not found: %s", path)).
		WithSuggestion("Run 'tstack-kit plan create' to generate a plan").
		WithDocs("https://github.com/tstackhq/tstack-kit#plans")
}

// NewPlanDriftError creates a lock drift error
func NewPlanDriftError(entity string, expectedHash string, actualHash string) *KitError {
	return New(ErrCodePlanDriftDetected, fmt.Sprintf("scaffold drift detected for entity: %s", entity)).
		WithSuggestion("Regenerate the plan with 'tstack-kit plan create' to sync with the scaffold").
		WithSuggestion(fmt.Sprintf("Expected fingerprint: %s, got: %s", expectedHash, actualHash)).
		WithDocs("https://github.com/tstackhq/tstack-kit#drift-detection")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *KitError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
