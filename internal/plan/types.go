package plan

import (
	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/naming"
)

// AuthRule is the resolved authorization requirement for one mutating
// route. SuperadminBypass, when set, is evaluated before every other
// check so a superadmin can always act.
type AuthRule struct {
	Roles            []string `json:"roles,omitempty"`
	OwnershipCheck   bool     `json:"ownership_check"`
	CustomCheck      bool     `json:"custom_check"`
	SuperadminBypass bool     `json:"superadmin_bypass"`
}

// AuthPlan maps every mutating route kind to its AuthRule. The plan also
// carries the create-time side-effect contract for ownership auth: the
// owner field is injected from the caller's identity, since a record that
// does not exist yet cannot be ownership-checked.
type AuthPlan struct {
	Rules               map[domain.RouteKind]AuthRule `json:"rules"`
	InjectOwnerOnCreate bool                          `json:"inject_owner_on_create"`
}

// RouteDecision is the resolved emission, visibility, and middleware
// outcome for one route. A decision with Emitted=false carries no other
// meaningful fields.
type RouteDecision struct {
	Kind            domain.RouteKind       `json:"kind"`
	Emitted         bool                   `json:"emitted"`
	Public          bool                   `json:"public"`
	MiddlewareChain []domain.MiddlewareRef `json:"middleware_chain,omitempty"`
}

// TemplateBinding carries the cross-cutting facts an artifact's template
// needs. The generator fills only the fields relevant to each artifact.
type TemplateBinding struct {
	Names               naming.Identifiers              `json:"names"`
	OwnershipField      string                          `json:"ownership_field,omitempty"`
	OwnershipFieldSnake string                          `json:"ownership_field_snake,omitempty"`
	InjectOwnerOnCreate bool                            `json:"inject_owner_on_create,omitempty"`
	AuthRules           map[domain.RouteKind]AuthRule   `json:"auth_rules,omitempty"`
	Routes              map[domain.RouteKind]RouteDecision `json:"routes,omitempty"`
	Hooks               []domain.HookKind               `json:"hooks,omitempty"`
	AllowedRoles        []string                        `json:"allowed_roles,omitempty"`
}

// ArtifactDescriptor describes one source artifact to generate. Artifact
// kinds are unique within a plan, so DependsOn references artifacts by kind.
type ArtifactDescriptor struct {
	Kind      domain.ArtifactKind   `json:"kind"`
	Target    string                `json:"target"`
	DependsOn []domain.ArtifactKind `json:"depends_on,omitempty"`
	Binding   TemplateBinding       `json:"binding"`
}

// GenerationPlan is the ordered, dependency-linked set of artifacts to
// emit for one entity. It is built once per invocation and handed to the
// emission collaborator; it is never persisted beyond the plan file.
type GenerationPlan struct {
	Entity         string                             `json:"entity"`
	Auth           domain.AuthType                    `json:"auth"`
	OwnershipField string                             `json:"ownership_field,omitempty"`
	Fingerprint    string                             `json:"fingerprint"`
	AuthRules      map[domain.RouteKind]AuthRule      `json:"auth_rules"`
	Routes         map[domain.RouteKind]RouteDecision `json:"routes"`
	Artifacts      []ArtifactDescriptor               `json:"artifacts"`
}

// Artifact returns the descriptor for the given kind, or nil when the
// plan does not contain it.
func (p *GenerationPlan) Artifact(kind domain.ArtifactKind) *ArtifactDescriptor {
	for i := range p.Artifacts {
		if p.Artifacts[i].Kind == kind {
			return &p.Artifacts[i]
		}
	}
	return nil
}

// EmittedRoutes returns the emitted route decisions in emission order.
func (p *GenerationPlan) EmittedRoutes() []RouteDecision {
	var out []RouteDecision
	for _, kind := range domain.AllRouteKinds {
		if decision, ok := p.Routes[kind]; ok && decision.Emitted {
			out = append(out, decision)
		}
	}
	return out
}
