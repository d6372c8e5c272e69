package scaffold

import (
	"fmt"
	"strings"

	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/errors"
	"github.com/tstackhq/tstack-kit/internal/naming"
)

// DefaultOwnershipField is assigned when ownership auth is requested
// without an explicit ownership field.
const DefaultOwnershipField = "userId"

// Normalize validates a raw EntitySpec and resolves every default,
// producing the canonical configuration the plan builders consume.
// All configuration problems are collected and reported together.
func Normalize(spec EntitySpec) (*NormalizedConfig, error) {
	var errs errors.List

	names, err := naming.Derive(spec.Name)
	if err != nil {
		if kitErr, ok := err.(*errors.KitError); ok {
			errs.Append(kitErr)
		} else {
			errs.Append(errors.Wrap(errors.ErrCodeNameEmpty, "derive entity names", err))
		}
	}

	auth := normalizeAuth(spec, &errs)
	ownershipField := normalizeOwnershipField(spec, auth, &errs)
	publicRoutes := normalizeRouteSet(spec.PublicRoutes, "public", &errs)
	disabledRoutes := normalizeRouteSet(spec.DisabledRoutes, "disabled", &errs)
	roles := normalizeRoles(spec.Roles)
	hooks := normalizeHooks(spec.Hooks, &errs)

	// A route kind in both sets is ambiguous intent: a disabled route is
	// never emitted, so declaring it public contradicts the configuration.
	// The conflict fails normalization rather than silently resolving.
	for _, kind := range domain.AllRouteKinds {
		if publicRoutes[kind] && disabledRoutes[kind] {
			errs.Append(errors.NewRouteConflictError(string(kind)))
		}
	}

	if auth == domain.AuthRole && len(roles) == 0 {
		errs.Append(errors.NewRolesRequiredError())
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	snake := ""
	if ownershipField != "" {
		snake = naming.Snake(ownershipField)
	}

	return &NormalizedConfig{
		Names:               names,
		Auth:                auth,
		OwnershipField:      ownershipField,
		OwnershipFieldSnake: snake,
		PublicRoutes:        publicRoutes,
		DisabledRoutes:      disabledRoutes,
		Roles:               roles,
		Hooks:               hooks,
		WithAdmin:           spec.WithAdmin,
		WithTests:           spec.WithTests,
		SkipMigration:       spec.SkipMigration,
	}, nil
}

func normalizeAuth(spec EntitySpec, errs *errors.List) domain.AuthType {
	raw := strings.TrimSpace(spec.Auth)
	if raw == "" {
		return domain.AuthNone
	}

	auth, err := domain.NewAuthType(raw)
	if err != nil {
		errs.Append(errors.New(errors.ErrCodeConfigAuthUnknown, err.Error()).
			WithSuggestion("Use one of: none, ownership, role, custom"))
		return domain.AuthNone
	}
	return auth
}

func normalizeOwnershipField(spec EntitySpec, auth domain.AuthType, errs *errors.List) string {
	if spec.OwnershipField != nil {
		field := strings.TrimSpace(*spec.OwnershipField)
		if field == "" && auth == domain.AuthOwnership {
			errs.Append(errors.New(errors.ErrCodeConfigOwnershipFieldEmpty,
				"ownership auth requires a non-empty ownership field").
				WithSuggestion("Omit --ownership-field to use the default 'userId'").
				WithSuggestion("Or name the owning column, e.g. --ownership-field authorId"))
			return ""
		}
		return field
	}

	if auth == domain.AuthOwnership {
		return DefaultOwnershipField
	}
	return ""
}

func normalizeRouteSet(raw []string, listName string, errs *errors.List) map[domain.RouteKind]bool {
	set := make(map[domain.RouteKind]bool, len(raw))
	for _, value := range raw {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		kind, err := domain.NewRouteKind(value)
		if err != nil {
			errs.Append(errors.New(errors.ErrCodeConfigRouteUnknown,
				fmt.Sprintf("unknown route %q in %s route list", value, listName)).
				WithSuggestion("Valid routes are: getAll, getById, create, update, delete"))
			continue
		}
		set[kind] = true
	}
	return set
}

func normalizeRoles(raw []string) []string {
	roles := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, role := range raw {
		role = strings.TrimSpace(role)
		if role == "" || seen[role] {
			continue
		}
		seen[role] = true
		roles = append(roles, role)
	}
	return roles
}

func normalizeHooks(raw []string, errs *errors.List) []domain.HookKind {
	requested := make(map[domain.HookKind]bool, len(raw))
	for _, value := range raw {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		hook, err := domain.NewHookKind(value)
		if err != nil {
			errs.Append(errors.New(errors.ErrCodeConfigHookUnknown, err.Error()).
				WithSuggestion("Valid hooks are: beforeCreate, afterCreate, beforeUpdate, afterUpdate, beforeDelete, afterDelete"))
			continue
		}
		requested[hook] = true
	}

	// Hooks are ordered by lifecycle position so generation is stable
	// regardless of the order they were requested in.
	hooks := make([]domain.HookKind, 0, len(requested))
	for _, hook := range domain.AllHookKinds {
		if requested[hook] {
			hooks = append(hooks, hook)
		}
	}
	return hooks
}
