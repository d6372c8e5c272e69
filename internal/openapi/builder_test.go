package openapi

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tstackhq/tstack-kit/internal/plan"
	"github.com/tstackhq/tstack-kit/internal/scaffold"
)

func generatePlan(t *testing.T, spec scaffold.EntitySpec) *plan.GenerationPlan {
	t.Helper()
	cfg, err := scaffold.Normalize(spec)
	require.NoError(t, err)
	p, err := plan.Generate(cfg)
	require.NoError(t, err)
	return p
}

func TestBuildDocument(t *testing.T) {
	p := generatePlan(t, scaffold.EntitySpec{
		Name:         "article",
		Auth:         "ownership",
		PublicRoutes: []string{"getAll", "getById"},
	})

	doc, err := BuildDocument(context.Background(), p)
	require.NoError(t, err)

	collection := doc.Paths.Find("/api/articles")
	require.NotNil(t, collection)
	assert.NotNil(t, collection.Get, "getAll")
	assert.NotNil(t, collection.Post, "create")

	item := doc.Paths.Find("/api/articles/{id}")
	require.NotNil(t, item)
	assert.NotNil(t, item.Get, "getById")
	assert.NotNil(t, item.Put, "update")
	assert.NotNil(t, item.Delete, "delete")

	// Public read routes carry no security requirement; mutations do.
	assert.Nil(t, collection.Get.Security)
	require.NotNil(t, collection.Post.Security)
	assert.NotEmpty(t, *collection.Post.Security)

	// Create and update accept a body; delete does not.
	assert.NotNil(t, collection.Post.RequestBody)
	assert.NotNil(t, item.Put.RequestBody)
	assert.Nil(t, item.Delete.RequestBody)
}

func TestBuildDocumentSkipsDisabledRoutes(t *testing.T) {
	p := generatePlan(t, scaffold.EntitySpec{
		Name:           "category",
		DisabledRoutes: []string{"create", "update", "delete"},
		PublicRoutes:   []string{"getAll", "getById"},
	})

	doc, err := BuildDocument(context.Background(), p)
	require.NoError(t, err)

	collection := doc.Paths.Find("/api/categories")
	require.NotNil(t, collection)
	assert.NotNil(t, collection.Get)
	assert.Nil(t, collection.Post, "disabled create must not appear")

	item := doc.Paths.Find("/api/categories/{id}")
	require.NotNil(t, item)
	assert.Nil(t, item.Put)
	assert.Nil(t, item.Delete)
}

func TestBuildDocumentResponses(t *testing.T) {
	p := generatePlan(t, scaffold.EntitySpec{Name: "article"})

	doc, err := BuildDocument(context.Background(), p)
	require.NoError(t, err)

	collection := doc.Paths.Find("/api/articles")
	require.NotNil(t, collection)
	assert.NotNil(t, collection.Post.Responses.Status(http.StatusCreated))

	item := doc.Paths.Find("/api/articles/{id}")
	require.NotNil(t, item)
	assert.NotNil(t, item.Delete.Responses.Status(http.StatusNoContent))
}

func TestSaveDocument(t *testing.T) {
	p := generatePlan(t, scaffold.EntitySpec{Name: "article"})
	doc, err := BuildDocument(context.Background(), p)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "openapi", "article.yaml")
	require.NoError(t, SaveDocument(doc, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/api/articles")
	assert.Contains(t, string(data), "openapi:")
}
