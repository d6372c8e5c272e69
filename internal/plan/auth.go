package plan

import (
	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/scaffold"
)

// BuildAuthPlan derives the AuthRule for every mutating route kind from a
// normalized configuration. Validation already happened during
// normalization, so this builder is total: it cannot fail for a valid
// NormalizedConfig.
func BuildAuthPlan(cfg *scaffold.NormalizedConfig) AuthPlan {
	rules := make(map[domain.RouteKind]AuthRule, len(domain.MutatingRouteKinds))
	injectOwner := false

	for _, kind := range domain.MutatingRouteKinds {
		rules[kind] = buildAuthRule(cfg, kind)
	}

	if cfg.Auth == domain.AuthOwnership {
		// There is nothing to own at creation time. Instead of an
		// ownership check, create records the contract that the owner
		// field is injected from the caller's identity.
		injectOwner = true
	}

	return AuthPlan{
		Rules:               rules,
		InjectOwnerOnCreate: injectOwner,
	}
}

func buildAuthRule(cfg *scaffold.NormalizedConfig, kind domain.RouteKind) AuthRule {
	switch cfg.Auth {
	case domain.AuthRole:
		return AuthRule{
			Roles:            cfg.Roles,
			SuperadminBypass: true,
		}

	case domain.AuthOwnership:
		if kind == domain.RouteCreate {
			return AuthRule{}
		}
		return AuthRule{
			OwnershipCheck:   true,
			SuperadminBypass: true,
		}

	case domain.AuthCustom:
		// The concrete check is implementer-supplied business logic;
		// the plan records only that a hook point must be wired.
		return AuthRule{CustomCheck: true}

	default:
		return AuthRule{}
	}
}
