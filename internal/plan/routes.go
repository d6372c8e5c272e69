package plan

import (
	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/scaffold"
)

// BuildRouteDecisions derives a RouteDecision for each of the five route
// kinds. The five decisions are independent and total: no kind is left
// unresolved.
func BuildRouteDecisions(cfg *scaffold.NormalizedConfig, auth AuthPlan) map[domain.RouteKind]RouteDecision {
	decisions := make(map[domain.RouteKind]RouteDecision, len(domain.AllRouteKinds))
	for _, kind := range domain.AllRouteKinds {
		decisions[kind] = buildRouteDecision(cfg, auth, kind)
	}
	return decisions
}

func buildRouteDecision(cfg *scaffold.NormalizedConfig, auth AuthPlan, kind domain.RouteKind) RouteDecision {
	// A disabled route is never emitted, regardless of any other flag.
	if cfg.IsDisabled(kind) {
		return RouteDecision{Kind: kind, Emitted: false}
	}

	// Mutating routes are never public. This is a hard rule, not a
	// default: the public list only applies to the read routes.
	public := false
	if !kind.Mutating() {
		public = cfg.IsPublic(kind)
	}

	return RouteDecision{
		Kind:            kind,
		Emitted:         true,
		Public:          public,
		MiddlewareChain: buildMiddlewareChain(auth.Rules[kind], kind, public),
	}
}

// buildMiddlewareChain concatenates middleware in fixed precedence order:
// authentication, then role checks, then custom checks, then body
// validation. Later middleware may assume an authenticated, role-checked
// request.
func buildMiddlewareChain(rule AuthRule, kind domain.RouteKind, public bool) []domain.MiddlewareRef {
	var chain []domain.MiddlewareRef

	if !public {
		chain = append(chain, domain.MiddlewareAuthenticate)
	}
	if len(rule.Roles) > 0 {
		chain = append(chain, domain.MiddlewareRequireRoles)
	}
	if rule.CustomCheck {
		chain = append(chain, domain.MiddlewareCustomCheck)
	}
	if kind.AcceptsBody() {
		chain = append(chain, domain.MiddlewareValidateBody)
	}

	return chain
}
