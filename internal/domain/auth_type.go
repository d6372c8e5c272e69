package domain

import "fmt"

// AuthType represents the authorization mode applied to an entity's
// mutating routes. This is a value object that enforces valid modes.
type AuthType string

// Valid authorization modes
const (
	AuthNone      AuthType = "none"      // No authorization checks
	AuthOwnership AuthType = "ownership" // Only the record owner may mutate
	AuthRole      AuthType = "role"      // A configured role set may mutate
	AuthCustom    AuthType = "custom"    // An implementer-supplied check decides
)

// NewAuthType creates a new AuthType value object with validation
func NewAuthType(value string) (AuthType, error) {
	a := AuthType(value)
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// Validate checks if the auth type is valid
func (a AuthType) Validate() error {
	switch a {
	case AuthNone, AuthOwnership, AuthRole, AuthCustom:
		return nil
	default:
		return fmt.Errorf("invalid auth type %q: must be none, ownership, role, or custom", string(a))
	}
}

// String returns the string representation
func (a AuthType) String() string {
	return string(a)
}
