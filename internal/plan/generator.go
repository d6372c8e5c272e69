package plan

import (
	"fmt"

	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/scaffold"
)

// DefaultAdminRoles restricts generated admin routes when the
// configuration carries no role list of its own.
var DefaultAdminRoles = []string{"admin", "superadmin"}

// Generate assembles the ordered GenerationPlan for one normalized
// configuration. For identical configurations the plan is structurally
// identical: artifact order, dependency edges, and bindings are all
// fixed, which keeps generation idempotent and plans diffable across
// tool versions.
func Generate(cfg *scaffold.NormalizedConfig) (*GenerationPlan, error) {
	fingerprint, err := scaffold.Fingerprint(cfg)
	if err != nil {
		return nil, fmt.Errorf("fingerprint config: %w", err)
	}

	auth := BuildAuthPlan(cfg)
	routes := BuildRouteDecisions(cfg, auth)

	p := &GenerationPlan{
		Entity:         cfg.Names.LowerCamel,
		Auth:           cfg.Auth,
		OwnershipField: cfg.OwnershipField,
		Fingerprint:    fingerprint,
		AuthRules:      auth.Rules,
		Routes:         routes,
	}

	// The first five artifacts are always emitted, in dependency order.
	p.Artifacts = append(p.Artifacts,
		ArtifactDescriptor{
			Kind:   domain.ArtifactModel,
			Target: fmt.Sprintf("src/models/%s.model", cfg.Names.LowerCamel),
			Binding: TemplateBinding{
				Names:               cfg.Names,
				OwnershipField:      cfg.OwnershipField,
				OwnershipFieldSnake: cfg.OwnershipFieldSnake,
			},
		},
		ArtifactDescriptor{
			Kind:      domain.ArtifactDTO,
			Target:    fmt.Sprintf("src/dtos/%s.dto", cfg.Names.LowerCamel),
			DependsOn: []domain.ArtifactKind{domain.ArtifactModel},
			Binding:   TemplateBinding{Names: cfg.Names},
		},
		ArtifactDescriptor{
			Kind:      domain.ArtifactService,
			Target:    fmt.Sprintf("src/services/%s.service", cfg.Names.LowerCamel),
			DependsOn: []domain.ArtifactKind{domain.ArtifactModel, domain.ArtifactDTO},
			Binding: TemplateBinding{
				Names:               cfg.Names,
				OwnershipField:      cfg.OwnershipField,
				InjectOwnerOnCreate: auth.InjectOwnerOnCreate,
				Hooks:               cfg.Hooks,
			},
		},
		ArtifactDescriptor{
			Kind:      domain.ArtifactController,
			Target:    fmt.Sprintf("src/controllers/%s.controller", cfg.Names.LowerCamel),
			DependsOn: []domain.ArtifactKind{domain.ArtifactService},
			Binding: TemplateBinding{
				Names:          cfg.Names,
				OwnershipField: cfg.OwnershipField,
				AuthRules:      auth.Rules,
			},
		},
		ArtifactDescriptor{
			Kind:      domain.ArtifactRoute,
			Target:    fmt.Sprintf("src/routes/%s.route", cfg.Names.LowerCamel),
			DependsOn: []domain.ArtifactKind{domain.ArtifactController, domain.ArtifactDTO},
			Binding: TemplateBinding{
				Names:  cfg.Names,
				Routes: routes,
			},
		},
	)

	if cfg.WithAdmin {
		p.Artifacts = append(p.Artifacts, ArtifactDescriptor{
			Kind:      domain.ArtifactAdminRoute,
			Target:    fmt.Sprintf("src/routes/admin/%s.admin.route", cfg.Names.LowerCamel),
			DependsOn: []domain.ArtifactKind{domain.ArtifactModel},
			Binding: TemplateBinding{
				Names:        cfg.Names,
				AllowedRoles: adminRoles(cfg),
			},
		})
	}

	if cfg.WithTests {
		p.Artifacts = append(p.Artifacts, ArtifactDescriptor{
			Kind:      domain.ArtifactTest,
			Target:    fmt.Sprintf("src/tests/%s.test", cfg.Names.LowerCamel),
			DependsOn: []domain.ArtifactKind{domain.ArtifactRoute},
			Binding: TemplateBinding{
				Names:  cfg.Names,
				Routes: routes,
			},
		})
	}

	if !cfg.SkipMigration {
		p.Artifacts = append(p.Artifacts, ArtifactDescriptor{
			Kind:   domain.ArtifactMigration,
			Target: fmt.Sprintf("src/db/migrations/create_%s", cfg.Names.TableName),
			Binding: TemplateBinding{
				Names:               cfg.Names,
				OwnershipFieldSnake: cfg.OwnershipFieldSnake,
			},
		})
	}

	return p, nil
}

// adminRoles resolves the role restriction for a generated admin route.
// The configured role list wins; without one, the conventional admin
// roles apply so an admin route is never emitted unrestricted.
func adminRoles(cfg *scaffold.NormalizedConfig) []string {
	if len(cfg.Roles) > 0 {
		return cfg.Roles
	}
	return DefaultAdminRoles
}
