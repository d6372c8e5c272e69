package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/errors"
)

func strPtr(s string) *string { return &s }

func TestNormalizeDefaults(t *testing.T) {
	cfg, err := Normalize(EntitySpec{Name: "article"})
	require.NoError(t, err)

	assert.Equal(t, "article", cfg.Names.LowerCamel)
	assert.Equal(t, "articles", cfg.Names.TableName)
	assert.Equal(t, domain.AuthNone, cfg.Auth)
	assert.Empty(t, cfg.OwnershipField)
	assert.Empty(t, cfg.Roles)
	assert.Empty(t, cfg.Hooks)
	assert.False(t, cfg.WithAdmin)
	assert.False(t, cfg.SkipMigration)
}

func TestNormalizeOwnershipDefaultsField(t *testing.T) {
	cfg, err := Normalize(EntitySpec{Name: "article", Auth: "ownership"})
	require.NoError(t, err)

	assert.Equal(t, DefaultOwnershipField, cfg.OwnershipField)
	assert.Equal(t, "user_id", cfg.OwnershipFieldSnake)
}

func TestNormalizeOwnershipExplicitField(t *testing.T) {
	cfg, err := Normalize(EntitySpec{
		Name:           "article",
		Auth:           "ownership",
		OwnershipField: strPtr("authorId"),
	})
	require.NoError(t, err)

	assert.Equal(t, "authorId", cfg.OwnershipField)
	assert.Equal(t, "author_id", cfg.OwnershipFieldSnake)
}

func TestNormalizeOwnershipEmptyFieldFails(t *testing.T) {
	_, err := Normalize(EntitySpec{
		Name:           "article",
		Auth:           "ownership",
		OwnershipField: strPtr(""),
	})
	require.Error(t, err)

	list, ok := err.(*errors.List)
	require.True(t, ok, "expected *errors.List, got %T", err)
	assert.True(t, list.HasCode(errors.ErrCodeConfigOwnershipFieldEmpty))
}

func TestNormalizeRoleAuthRequiresRoles(t *testing.T) {
	_, err := Normalize(EntitySpec{Name: "user", Auth: "role"})
	require.Error(t, err)

	list, ok := err.(*errors.List)
	require.True(t, ok)
	assert.True(t, list.HasCode(errors.ErrCodeConfigRolesRequired))
}

func TestNormalizePublicDisabledConflict(t *testing.T) {
	// Scenario: a route in both lists is ambiguous intent and fails
	// instead of letting "disabled" silently win.
	_, err := Normalize(EntitySpec{
		Name:           "article",
		PublicRoutes:   []string{"getAll"},
		DisabledRoutes: []string{"getAll"},
	})
	require.Error(t, err)

	list, ok := err.(*errors.List)
	require.True(t, ok)
	assert.True(t, list.HasCode(errors.ErrCodeConfigRouteConflict))
}

func TestNormalizeUnknownHookFails(t *testing.T) {
	_, err := Normalize(EntitySpec{Name: "article", Hooks: []string{"beforeSave"}})
	require.Error(t, err)

	list, ok := err.(*errors.List)
	require.True(t, ok)
	assert.True(t, list.HasCode(errors.ErrCodeConfigHookUnknown))
}

func TestNormalizeUnknownAuthFails(t *testing.T) {
	_, err := Normalize(EntitySpec{Name: "article", Auth: "jwt"})
	require.Error(t, err)

	list, ok := err.(*errors.List)
	require.True(t, ok)
	assert.True(t, list.HasCode(errors.ErrCodeConfigAuthUnknown))
}

func TestNormalizeCollectsAllErrors(t *testing.T) {
	// Every problem is reported in one pass, not just the first.
	_, err := Normalize(EntitySpec{
		Name:           "article",
		Auth:           "role",
		PublicRoutes:   []string{"getById"},
		DisabledRoutes: []string{"getById"},
		Hooks:          []string{"onSave"},
	})
	require.Error(t, err)

	list, ok := err.(*errors.List)
	require.True(t, ok)
	assert.True(t, list.HasCode(errors.ErrCodeConfigRolesRequired))
	assert.True(t, list.HasCode(errors.ErrCodeConfigRouteConflict))
	assert.True(t, list.HasCode(errors.ErrCodeConfigHookUnknown))
	assert.Equal(t, 3, list.Len())
}

func TestNormalizeHooksOrderedAndDeduplicated(t *testing.T) {
	cfg, err := Normalize(EntitySpec{
		Name:  "article",
		Hooks: []string{"afterDelete", "beforeCreate", "afterDelete"},
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.HookKind{domain.HookBeforeCreate, domain.HookAfterDelete}, cfg.Hooks)
}

func TestNormalizeRolesDeduplicated(t *testing.T) {
	cfg, err := Normalize(EntitySpec{
		Name:  "user",
		Auth:  "role",
		Roles: []string{"admin", " superadmin ", "admin"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"admin", "superadmin"}, cfg.Roles)
}

func TestNormalizeUnknownRouteFails(t *testing.T) {
	_, err := Normalize(EntitySpec{Name: "article", DisabledRoutes: []string{"list"}})
	require.Error(t, err)

	list, ok := err.(*errors.List)
	require.True(t, ok)
	assert.True(t, list.HasCode(errors.ErrCodeConfigRouteUnknown))
}

func TestNormalizeInvalidNameFails(t *testing.T) {
	_, err := Normalize(EntitySpec{Name: "user2"})
	require.Error(t, err)

	list, ok := err.(*errors.List)
	require.True(t, ok)
	assert.True(t, list.HasCode(errors.ErrCodeNameNotAlphabetic))
}
