// Package tui provides the interactive surfaces of the CLI: the scaffold
// wizard, the plan review session, and plan rendering.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/naming"
	"github.com/tstackhq/tstack-kit/internal/scaffold"
)

// WizardAnswers collects the raw form values before they are shaped into
// an EntitySpec. Role and field inputs stay as strings so the form can
// round-trip them.
type WizardAnswers struct {
	Name           string
	Auth           string
	Roles          string
	OwnershipField string
	PublicRoutes   []string
	DisabledRoutes []string
	Hooks          []string
	WithAdmin      bool
	WithTests      bool
	SkipMigration  bool
}

// ToEntitySpec shapes the collected answers into an EntitySpec ready for
// normalization.
func (a WizardAnswers) ToEntitySpec() *scaffold.EntitySpec {
	spec := &scaffold.EntitySpec{
		Name:           strings.TrimSpace(a.Name),
		Auth:           a.Auth,
		PublicRoutes:   a.PublicRoutes,
		DisabledRoutes: a.DisabledRoutes,
		Hooks:          a.Hooks,
		WithAdmin:      a.WithAdmin,
		WithTests:      a.WithTests,
		SkipMigration:  a.SkipMigration,
	}

	if roles := splitList(a.Roles); len(roles) > 0 {
		spec.Roles = roles
	}

	if field := strings.TrimSpace(a.OwnershipField); field != "" {
		spec.OwnershipField = &field
	}

	return spec
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func routeOptions() []huh.Option[string] {
	var options []huh.Option[string]
	for _, kind := range domain.AllRouteKinds {
		options = append(options, huh.NewOption(kind.String(), kind.String()))
	}
	return options
}

func hookOptions() []huh.Option[string] {
	var options []huh.Option[string]
	for _, hook := range domain.AllHookKinds {
		options = append(options, huh.NewOption(hook.String(), hook.String()))
	}
	return options
}

// NewWizardForm builds the huh form that fills the given answers.
// Separated from RunWizard so the form structure is testable without a
// terminal.
func NewWizardForm(answers *WizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Entity name").
				Description("Singular, alphabetic, e.g. 'article' or 'siteSetting'").
				Value(&answers.Name).
				Validate(func(s string) error {
					_, err := naming.Derive(s)
					return err
				}),
			huh.NewSelect[string]().
				Key("auth").
				Title("Authorization mode").
				Description("Applied to the entity's mutating routes").
				Options(
					huh.NewOption("none — no authorization checks", string(domain.AuthNone)),
					huh.NewOption("ownership — only the record owner may mutate", string(domain.AuthOwnership)),
					huh.NewOption("role — a configured role set may mutate", string(domain.AuthRole)),
					huh.NewOption("custom — implementer-supplied check", string(domain.AuthCustom)),
				).
				Value(&answers.Auth),
		).Title("Entity"),

		huh.NewGroup(
			huh.NewInput().
				Key("roles").
				Title("Allowed roles").
				Description("Comma-separated, e.g. admin,editor").
				Value(&answers.Roles).
				Validate(func(s string) error {
					if answers.Auth == string(domain.AuthRole) && len(splitList(s)) == 0 {
						return fmt.Errorf("role auth requires at least one role")
					}
					return nil
				}),
		).Title("Roles").WithHideFunc(func() bool {
			return answers.Auth != string(domain.AuthRole)
		}),

		huh.NewGroup(
			huh.NewInput().
				Key("ownershipField").
				Title("Ownership field").
				Description("Record field holding the owner's id (default: userId)").
				Value(&answers.OwnershipField),
		).Title("Ownership").WithHideFunc(func() bool {
			return answers.Auth != string(domain.AuthOwnership)
		}),

		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key("publicRoutes").
				Title("Public routes").
				Description("Read routes reachable without authentication").
				Options(routeOptions()...).
				Value(&answers.PublicRoutes),
			huh.NewMultiSelect[string]().
				Key("disabledRoutes").
				Title("Disabled routes").
				Description("Routes to omit from the scaffold entirely").
				Options(routeOptions()...).
				Value(&answers.DisabledRoutes),
			huh.NewMultiSelect[string]().
				Key("hooks").
				Title("Lifecycle hooks").
				Description("Service methods generated as placeholders").
				Options(hookOptions()...).
				Value(&answers.Hooks),
		).Title("Routes & hooks"),

		huh.NewGroup(
			huh.NewConfirm().
				Key("withAdmin").
				Title("Generate admin routes?").
				Value(&answers.WithAdmin),
			huh.NewConfirm().
				Key("withTests").
				Title("Generate integration tests?").
				Value(&answers.WithTests),
			huh.NewConfirm().
				Key("skipMigration").
				Title("Skip the database migration?").
				Value(&answers.SkipMigration),
		).Title("Extras"),
	)
}

// RunWizard walks the user through describing an entity and returns the
// assembled EntitySpec.
func RunWizard() (*scaffold.EntitySpec, error) {
	answers := &WizardAnswers{
		Auth: string(domain.AuthNone),
	}

	if err := NewWizardForm(answers).Run(); err != nil {
		return nil, fmt.Errorf("running scaffold wizard: %w", err)
	}

	return answers.ToEntitySpec(), nil
}
