// Package openapi renders the emitted routes of a generation plan as an
// OpenAPI 3 document, so the scaffolded API surface can be reviewed and
// diffed before any code is generated.
package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/plan"
)

const securityScheme = "bearerAuth"

// BuildDocument constructs a validated OpenAPI document from the emitted
// routes of a generation plan.
func BuildDocument(ctx context.Context, p *plan.GenerationPlan) (*openapi3.T, error) {
	route := p.Artifact(domain.ArtifactRoute)
	if route == nil {
		return nil, fmt.Errorf("plan for %s has no route artifact", p.Entity)
	}
	names := route.Binding.Names

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   fmt.Sprintf("%s API", names.UpperCamel),
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			SecuritySchemes: openapi3.SecuritySchemes{
				securityScheme: &openapi3.SecuritySchemeRef{Value: openapi3.NewJWTSecurityScheme()},
			},
		},
	}

	collectionPath := fmt.Sprintf("/api/%s", names.TableName)
	itemPath := collectionPath + "/{id}"

	collection := &openapi3.PathItem{}
	item := &openapi3.PathItem{}

	for _, decision := range p.EmittedRoutes() {
		switch decision.Kind {
		case domain.RouteGetAll:
			collection.SetOperation(http.MethodGet, operation(decision,
				fmt.Sprintf("list%s", names.UpperCamelPlural),
				fmt.Sprintf("List all %s", names.TableName),
				http.StatusOK, false))
		case domain.RouteGetByID:
			item.SetOperation(http.MethodGet, operation(decision,
				fmt.Sprintf("get%sById", names.UpperCamel),
				fmt.Sprintf("Get one %s by id", names.LowerCamel),
				http.StatusOK, true))
		case domain.RouteCreate:
			collection.SetOperation(http.MethodPost, operation(decision,
				fmt.Sprintf("create%s", names.UpperCamel),
				fmt.Sprintf("Create a %s", names.LowerCamel),
				http.StatusCreated, false))
		case domain.RouteUpdate:
			item.SetOperation(http.MethodPut, operation(decision,
				fmt.Sprintf("update%s", names.UpperCamel),
				fmt.Sprintf("Update a %s", names.LowerCamel),
				http.StatusOK, true))
		case domain.RouteDelete:
			item.SetOperation(http.MethodDelete, operation(decision,
				fmt.Sprintf("delete%s", names.UpperCamel),
				fmt.Sprintf("Delete a %s", names.LowerCamel),
				http.StatusNoContent, true))
		}
	}

	if len(collection.Operations()) > 0 {
		doc.Paths.Set(collectionPath, collection)
	}
	if len(item.Operations()) > 0 {
		doc.Paths.Set(itemPath, item)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	return doc, nil
}

func operation(decision plan.RouteDecision, id string, summary string, status int, withID bool) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = id
	op.Summary = summary
	op.AddResponse(status, openapi3.NewResponse().WithDescription(summary))

	if withID {
		op.AddParameter(openapi3.NewPathParameter("id").WithSchema(openapi3.NewStringSchema()))
	}

	if decision.Kind.AcceptsBody() {
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithDescription(fmt.Sprintf("%s payload", decision.Kind)),
		}
	}

	if !decision.Public {
		op.Security = openapi3.NewSecurityRequirements().
			With(openapi3.NewSecurityRequirement().Authenticate(securityScheme))
	}

	return op
}

// SaveDocument writes the document to disk as YAML.
func SaveDocument(doc *openapi3.T, path string) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal OpenAPI document: %w", err)
	}

	// Round-trip through a generic map so the YAML output keeps the
	// document's JSON field names.
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("decode OpenAPI document: %w", err)
	}

	data, err := yaml.Marshal(obj)
	if err != nil {
		return fmt.Errorf("encode OpenAPI YAML: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write OpenAPI file: %w", err)
	}

	return nil
}
