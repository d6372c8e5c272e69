package plan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/scaffold"
)

func TestGenerateBaseArtifacts(t *testing.T) {
	cfg := mustNormalize(t, scaffold.EntitySpec{Name: "article"})
	p, err := Generate(cfg)
	require.NoError(t, err)

	kinds := make([]domain.ArtifactKind, len(p.Artifacts))
	for i, artifact := range p.Artifacts {
		kinds[i] = artifact.Kind
	}

	// Model through route always, migration by default.
	assert.Equal(t, []domain.ArtifactKind{
		domain.ArtifactModel,
		domain.ArtifactDTO,
		domain.ArtifactService,
		domain.ArtifactController,
		domain.ArtifactRoute,
		domain.ArtifactMigration,
	}, kinds)

	require.NoError(t, p.Validate())
}

func TestGenerateOptionalArtifacts(t *testing.T) {
	cfg := mustNormalize(t, scaffold.EntitySpec{
		Name:      "user",
		Auth:      "role",
		Roles:     []string{"admin"},
		WithAdmin: true,
		WithTests: true,
	})
	p, err := Generate(cfg)
	require.NoError(t, err)

	admin := p.Artifact(domain.ArtifactAdminRoute)
	require.NotNil(t, admin)
	assert.Equal(t, []string{"admin"}, admin.Binding.AllowedRoles)
	assert.Equal(t, []domain.ArtifactKind{domain.ArtifactModel}, admin.DependsOn)

	test := p.Artifact(domain.ArtifactTest)
	require.NotNil(t, test)
	assert.Equal(t, []domain.ArtifactKind{domain.ArtifactRoute}, test.DependsOn)

	require.NoError(t, p.Validate())
}

func TestGenerateSkipMigration(t *testing.T) {
	cfg := mustNormalize(t, scaffold.EntitySpec{Name: "article", SkipMigration: true})
	p, err := Generate(cfg)
	require.NoError(t, err)

	assert.Nil(t, p.Artifact(domain.ArtifactMigration))
}

func TestGenerateAdminRolesDefault(t *testing.T) {
	// An admin route without a configured role list falls back to the
	// conventional admin roles rather than going unrestricted.
	cfg := mustNormalize(t, scaffold.EntitySpec{Name: "article", Auth: "ownership", WithAdmin: true})
	p, err := Generate(cfg)
	require.NoError(t, err)

	admin := p.Artifact(domain.ArtifactAdminRoute)
	require.NotNil(t, admin)
	assert.Equal(t, DefaultAdminRoles, admin.Binding.AllowedRoles)
	require.NoError(t, p.Validate())
}

func TestGenerateDeterministic(t *testing.T) {
	spec := scaffold.EntitySpec{
		Name:           "article",
		Auth:           "ownership",
		OwnershipField: strPtr("authorId"),
		PublicRoutes:   []string{"getAll", "getById"},
		Hooks:          []string{"beforeCreate", "afterDelete"},
		WithAdmin:      true,
		WithTests:      true,
	}

	first, err := Generate(mustNormalize(t, spec))
	require.NoError(t, err)
	second, err := Generate(mustNormalize(t, spec))
	require.NoError(t, err)

	// Structural identity: ordering, dependency edges, bindings.
	assert.Equal(t, first, second)
}

func TestGenerateBindings(t *testing.T) {
	cfg := mustNormalize(t, scaffold.EntitySpec{
		Name:  "article",
		Auth:  "ownership",
		Hooks: []string{"beforeCreate", "afterUpdate"},
	})
	p, err := Generate(cfg)
	require.NoError(t, err)

	// The service binding carries the hook set and the owner-injection
	// contract; the controller carries the auth rules; the route carries
	// the route decisions.
	service := p.Artifact(domain.ArtifactService)
	require.NotNil(t, service)
	assert.Equal(t, []domain.HookKind{domain.HookBeforeCreate, domain.HookAfterUpdate}, service.Binding.Hooks)
	assert.True(t, service.Binding.InjectOwnerOnCreate)

	controller := p.Artifact(domain.ArtifactController)
	require.NotNil(t, controller)
	assert.True(t, controller.Binding.AuthRules[domain.RouteUpdate].OwnershipCheck)

	route := p.Artifact(domain.ArtifactRoute)
	require.NotNil(t, route)
	assert.Len(t, route.Binding.Routes, len(domain.AllRouteKinds))

	migration := p.Artifact(domain.ArtifactMigration)
	require.NotNil(t, migration)
	assert.Equal(t, "user_id", migration.Binding.OwnershipFieldSnake)
	assert.Equal(t, "src/db/migrations/create_articles", migration.Target)
}

func TestPlanRoundTrip(t *testing.T) {
	cfg := mustNormalize(t, scaffold.EntitySpec{Name: "article", Auth: "ownership", WithTests: true})
	p, err := Generate(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plans", "article.plan.json")
	require.NoError(t, SavePlan(p, path))

	loaded, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestManifest(t *testing.T) {
	cfg := mustNormalize(t, scaffold.EntitySpec{Name: "article"})
	p, err := Generate(cfg)
	require.NoError(t, err)

	m := NewRunManifest(p, "article.plan.json")
	assert.NotEmpty(t, m.RunID)
	assert.Equal(t, "article", m.Entity)
	assert.Equal(t, len(p.Artifacts), m.ArtifactCount)

	dir := t.TempDir()
	path, err := SaveManifest(m, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, m.RunID+".json"), path)
}
