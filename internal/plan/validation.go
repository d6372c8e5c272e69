package plan

import (
	"fmt"
	"strings"

	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/errors"
)

// Validate checks the assembled plan for internal consistency before it
// is handed to emission. Every problem found is returned; any failure
// aborts generation entirely so no partial file set is ever produced.
func (p *GenerationPlan) Validate() error {
	var errs errors.List

	present := make(map[domain.ArtifactKind]bool, len(p.Artifacts))
	for i, artifact := range p.Artifacts {
		if err := artifact.Kind.Validate(); err != nil {
			errs.Append(errors.New(errors.ErrCodePlanInvalid,
				fmt.Sprintf("artifact at index %d: %v", i, err)))
			continue
		}
		if present[artifact.Kind] {
			errs.Append(errors.New(errors.ErrCodePlanInvalid,
				fmt.Sprintf("duplicate artifact kind %q at index %d", artifact.Kind, i)))
			continue
		}
		present[artifact.Kind] = true
	}

	// Every dependency must reference an artifact in the plan.
	for _, artifact := range p.Artifacts {
		for _, dep := range artifact.DependsOn {
			if !present[dep] {
				errs.Append(errors.New(errors.ErrCodePlanMissingDep,
					fmt.Sprintf("artifact %q depends on %q, which is not in the plan", artifact.Kind, dep)).
					WithSuggestion("Regenerate the plan with 'tstack-kit plan create'"))
			}
		}
	}

	if err := p.checkCircularDependencies(); err != nil {
		errs.Append(err)
	}

	// Duplicate defense against a normalizer regression: an ownership
	// check without an ownership field cannot be emitted.
	for _, kind := range domain.MutatingRouteKinds {
		rule, ok := p.AuthRules[kind]
		if ok && rule.OwnershipCheck && p.OwnershipField == "" {
			errs.Append(errors.New(errors.ErrCodePlanOwnershipField,
				fmt.Sprintf("route %q requires an ownership check but no ownership field is configured", kind)).
				WithSuggestion("Set --ownership-field or use --auth ownership to default it to 'userId'"))
		}
	}

	// An admin panel with no role restriction is a misconfiguration.
	if admin := p.Artifact(domain.ArtifactAdminRoute); admin != nil {
		if len(admin.Binding.AllowedRoles) == 0 {
			errs.Append(errors.New(errors.ErrCodePlanAdminRoles,
				"admin route declares no allowed roles").
				WithSuggestion("Pass --roles to restrict the admin routes"))
		}
	}

	return errs.Err()
}

// checkCircularDependencies detects cycles in the artifact dependency graph
func (p *GenerationPlan) checkCircularDependencies() *errors.KitError {
	graph := make(map[domain.ArtifactKind][]domain.ArtifactKind, len(p.Artifacts))
	for _, artifact := range p.Artifacts {
		graph[artifact.Kind] = artifact.DependsOn
	}

	visited := make(map[domain.ArtifactKind]bool)
	recStack := make(map[domain.ArtifactKind]bool)

	var cycleErr *errors.KitError
	var visit func(kind domain.ArtifactKind, path []string) bool
	visit = func(kind domain.ArtifactKind, path []string) bool {
		visited[kind] = true
		recStack[kind] = true
		path = append(path, string(kind))

		for _, dep := range graph[kind] {
			if !visited[dep] {
				if visit(dep, path) {
					return true
				}
			} else if recStack[dep] {
				cyclePath := append(path, string(dep))
				cycleErr = errors.New(errors.ErrCodePlanCyclicDep,
					fmt.Sprintf("circular artifact dependency: %s", strings.Join(cyclePath, " -> ")))
				return true
			}
		}

		recStack[kind] = false
		return false
	}

	for _, artifact := range p.Artifacts {
		if !visited[artifact.Kind] {
			if visit(artifact.Kind, nil) {
				return cycleErr
			}
		}
	}

	return nil
}
