package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLockAndDrift(t *testing.T) {
	cfg := normalizeForTest(t, EntitySpec{Name: "article", Auth: "ownership"})

	lock, err := GenerateLock([]*NormalizedConfig{cfg}, "1.0")
	require.NoError(t, err)
	require.Contains(t, lock.Entities, "article")

	// Unchanged config: no drift.
	_, _, drifted, err := lock.Drift(cfg)
	require.NoError(t, err)
	assert.False(t, drifted)

	// Changed config: drift.
	changed := normalizeForTest(t, EntitySpec{Name: "article", Auth: "ownership", WithAdmin: true})
	locked, current, drifted, err := lock.Drift(changed)
	require.NoError(t, err)
	assert.True(t, drifted)
	assert.NotEqual(t, locked, current)

	// Entity not in the lock: not drift, just unplanned.
	other := normalizeForTest(t, EntitySpec{Name: "category"})
	_, _, drifted, err = lock.Drift(other)
	require.NoError(t, err)
	assert.False(t, drifted)
}

func TestLockRoundTrip(t *testing.T) {
	cfg := normalizeForTest(t, EntitySpec{Name: "article"})
	lock, err := GenerateLock([]*NormalizedConfig{cfg}, "1.0")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "scaffold.lock.json")
	require.NoError(t, SaveLock(lock, path))

	loaded, err := LoadLock(path)
	require.NoError(t, err)
	assert.Equal(t, lock.Version, loaded.Version)
	assert.Equal(t, lock.Entities, loaded.Entities)
}

func TestEntitySpecRoundTrip(t *testing.T) {
	spec := &EntitySpec{
		Name:           "article",
		Auth:           "ownership",
		OwnershipField: strPtr("authorId"),
		PublicRoutes:   []string{"getAll", "getById"},
		Hooks:          []string{"beforeCreate"},
		WithTests:      true,
	}

	path := filepath.Join(t.TempDir(), "article.yaml")
	require.NoError(t, SaveEntitySpec(spec, path))

	loaded, err := LoadEntitySpec(path)
	require.NoError(t, err)
	assert.Equal(t, spec, loaded)
}
