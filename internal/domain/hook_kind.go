package domain

import "fmt"

// HookKind represents a service lifecycle hook a scaffold can reserve a
// placeholder method for. The hook body is always implementer-supplied
// business logic; the planner only records that the placeholder is wanted.
type HookKind string

// Valid lifecycle hooks
const (
	HookBeforeCreate HookKind = "beforeCreate"
	HookAfterCreate  HookKind = "afterCreate"
	HookBeforeUpdate HookKind = "beforeUpdate"
	HookAfterUpdate  HookKind = "afterUpdate"
	HookBeforeDelete HookKind = "beforeDelete"
	HookAfterDelete  HookKind = "afterDelete"
)

// AllHookKinds lists every lifecycle hook in generation order.
var AllHookKinds = []HookKind{
	HookBeforeCreate,
	HookAfterCreate,
	HookBeforeUpdate,
	HookAfterUpdate,
	HookBeforeDelete,
	HookAfterDelete,
}

// NewHookKind creates a new HookKind value object with validation
func NewHookKind(value string) (HookKind, error) {
	h := HookKind(value)
	if err := h.Validate(); err != nil {
		return "", err
	}
	return h, nil
}

// Validate checks if the hook name is one of the six recognized hooks
func (h HookKind) Validate() error {
	switch h {
	case HookBeforeCreate, HookAfterCreate, HookBeforeUpdate, HookAfterUpdate, HookBeforeDelete, HookAfterDelete:
		return nil
	default:
		return fmt.Errorf("invalid hook %q: must be one of beforeCreate, afterCreate, beforeUpdate, afterUpdate, beforeDelete, afterDelete", string(h))
	}
}

// String returns the string representation
func (h HookKind) String() string {
	return string(h)
}
