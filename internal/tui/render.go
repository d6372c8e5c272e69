package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/plan"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	publicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)

	chainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// RenderPlan produces a static, human-readable rendering of a generation
// plan for the visualize command.
func RenderPlan(p *plan.GenerationPlan) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Generation Plan — %s", p.Entity)))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("  Entity"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("    auth: %s", p.Auth))
	if p.OwnershipField != "" {
		b.WriteString(fmt.Sprintf(" (ownership field: %s)", p.OwnershipField))
	}
	b.WriteString("\n")
	if p.Fingerprint != "" {
		fp := p.Fingerprint
		if len(fp) > 16 {
			fp = fp[:16]
		}
		b.WriteString(fmt.Sprintf("    fingerprint: %s…\n", fp))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("  Routes"))
	b.WriteString("\n")
	for _, kind := range domain.AllRouteKinds {
		decision, ok := p.Routes[kind]
		if !ok {
			continue
		}
		b.WriteString(renderRoute(decision))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("  Artifacts"))
	b.WriteString("\n")
	for _, artifact := range p.Artifacts {
		b.WriteString(fmt.Sprintf("    %-12s %s", artifact.Kind, artifact.Target))
		if len(artifact.DependsOn) > 0 {
			deps := make([]string, len(artifact.DependsOn))
			for i, dep := range artifact.DependsOn {
				deps[i] = dep.String()
			}
			b.WriteString(chainStyle.Render(fmt.Sprintf("  ← %s", strings.Join(deps, ", "))))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderRoute(decision plan.RouteDecision) string {
	name := fmt.Sprintf("    %-10s", decision.Kind)
	if !decision.Emitted {
		return disabledStyle.Render(name + " disabled")
	}

	var parts []string
	if decision.Public {
		parts = append(parts, publicStyle.Render("public"))
	}
	if len(decision.MiddlewareChain) > 0 {
		chain := make([]string, len(decision.MiddlewareChain))
		for i, mw := range decision.MiddlewareChain {
			chain[i] = mw.String()
		}
		parts = append(parts, chainStyle.Render(strings.Join(chain, " → ")))
	}
	if len(parts) == 0 {
		parts = append(parts, publicStyle.Render("open"))
	}

	return name + " " + strings.Join(parts, "  ")
}

// RenderArtifact produces the explain output for a single artifact:
// what will be generated, where, and under which binding.
func RenderArtifact(artifact *plan.ArtifactDescriptor) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Artifact — %s", artifact.Kind)))
	b.WriteString("\n\n")

	writeDetail(&b, "Target", artifact.Target)
	writeDetail(&b, "Entity", artifact.Binding.Names.UpperCamel)
	writeDetail(&b, "Table", artifact.Binding.Names.TableName)

	if len(artifact.DependsOn) > 0 {
		deps := make([]string, len(artifact.DependsOn))
		for i, dep := range artifact.DependsOn {
			deps[i] = dep.String()
		}
		writeDetail(&b, "Depends on", strings.Join(deps, ", "))
	}

	if artifact.Binding.OwnershipField != "" {
		writeDetail(&b, "Ownership field", artifact.Binding.OwnershipField)
	}
	if artifact.Binding.InjectOwnerOnCreate {
		writeDetail(&b, "Create", "owner id injected from the caller's identity")
	}
	if len(artifact.Binding.AllowedRoles) > 0 {
		writeDetail(&b, "Allowed roles", strings.Join(artifact.Binding.AllowedRoles, ", "))
	}
	if len(artifact.Binding.Hooks) > 0 {
		hooks := make([]string, len(artifact.Binding.Hooks))
		for i, hook := range artifact.Binding.Hooks {
			hooks[i] = hook.String()
		}
		writeDetail(&b, "Hooks", strings.Join(hooks, ", "))
	}

	if len(artifact.Binding.Routes) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("  Routes"))
		b.WriteString("\n")
		for _, kind := range domain.AllRouteKinds {
			decision, ok := artifact.Binding.Routes[kind]
			if !ok {
				continue
			}
			b.WriteString(renderRoute(decision))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeDetail(b *strings.Builder, key, value string) {
	b.WriteString("  ")
	b.WriteString(detailKeyStyle.Render(fmt.Sprintf("%-16s:", key)))
	b.WriteString(" ")
	b.WriteString(detailValueStyle.Render(value))
	b.WriteString("\n")
}
