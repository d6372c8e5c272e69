package domain

import "fmt"

// MiddlewareRef names a middleware a generated route is wired through.
// The concrete middleware implementation belongs to the emitted project,
// not to the planner.
type MiddlewareRef string

// Valid middleware references, in chain precedence order: authentication
// first, then role checks, then custom checks, then body validation.
// Later middleware may assume an authenticated, role-checked request.
const (
	MiddlewareAuthenticate MiddlewareRef = "authenticate"
	MiddlewareRequireRoles MiddlewareRef = "requireRoles"
	MiddlewareCustomCheck  MiddlewareRef = "customCheck"
	MiddlewareValidateBody MiddlewareRef = "validateBody"
)

// NewMiddlewareRef creates a new MiddlewareRef value object with validation
func NewMiddlewareRef(value string) (MiddlewareRef, error) {
	m := MiddlewareRef(value)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate checks if the middleware reference is valid
func (m MiddlewareRef) Validate() error {
	switch m {
	case MiddlewareAuthenticate, MiddlewareRequireRoles, MiddlewareCustomCheck, MiddlewareValidateBody:
		return nil
	default:
		return fmt.Errorf("invalid middleware reference %q", string(m))
	}
}

// String returns the string representation
func (m MiddlewareRef) String() string {
	return string(m)
}
