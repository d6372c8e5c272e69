package scaffold

import (
	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/naming"
)

// EntitySpec is the raw, user-supplied generation configuration for one
// entity, as read from a scaffold file or assembled from CLI flags.
// It is created once per invocation and never modified afterwards.
type EntitySpec struct {
	Name string `yaml:"name" json:"name"`
	Auth string `yaml:"auth,omitempty" json:"auth,omitempty"`

	// OwnershipField distinguishes unset (nil) from explicitly empty,
	// which is a configuration error under ownership auth.
	OwnershipField *string `yaml:"ownershipField,omitempty" json:"ownership_field,omitempty"`

	PublicRoutes   []string `yaml:"publicRoutes,omitempty" json:"public_routes,omitempty"`
	DisabledRoutes []string `yaml:"disabledRoutes,omitempty" json:"disabled_routes,omitempty"`
	Roles          []string `yaml:"roles,omitempty" json:"roles,omitempty"`
	Hooks          []string `yaml:"hooks,omitempty" json:"hooks,omitempty"`

	WithAdmin     bool `yaml:"withAdmin,omitempty" json:"with_admin,omitempty"`
	WithTests     bool `yaml:"withTests,omitempty" json:"with_tests,omitempty"`
	SkipMigration bool `yaml:"skipMigration,omitempty" json:"skip_migration,omitempty"`
}

// NormalizedConfig is the canonical, fully-defaulted form of an EntitySpec.
// Every field a downstream builder needs is present and typed; consumers
// never re-check existence. Owned by Normalize and read-only afterwards.
type NormalizedConfig struct {
	Names naming.Identifiers `json:"names"`
	Auth  domain.AuthType    `json:"auth"`

	// OwnershipField is empty unless ownership semantics apply.
	OwnershipField      string `json:"ownership_field,omitempty"`
	OwnershipFieldSnake string `json:"ownership_field_snake,omitempty"`

	PublicRoutes   map[domain.RouteKind]bool `json:"public_routes"`
	DisabledRoutes map[domain.RouteKind]bool `json:"disabled_routes"`
	Roles          []string                  `json:"roles"`
	Hooks          []domain.HookKind         `json:"hooks"`

	WithAdmin     bool `json:"with_admin"`
	WithTests     bool `json:"with_tests"`
	SkipMigration bool `json:"skip_migration"`
}

// IsPublic reports whether the route kind was requested as public.
// The route plan builder still overrides this for mutating routes.
func (c *NormalizedConfig) IsPublic(kind domain.RouteKind) bool {
	return c.PublicRoutes[kind]
}

// IsDisabled reports whether the route kind is suppressed entirely.
func (c *NormalizedConfig) IsDisabled(kind domain.RouteKind) bool {
	return c.DisabledRoutes[kind]
}

// HasHook reports whether a lifecycle hook placeholder was requested.
func (c *NormalizedConfig) HasHook(hook domain.HookKind) bool {
	for _, h := range c.Hooks {
		if h == hook {
			return true
		}
	}
	return false
}
