package tui

import (
	"strings"
	"testing"

	"github.com/tstackhq/tstack-kit/internal/domain"
)

func TestRenderPlan(t *testing.T) {
	p := testPlan(t)

	out := RenderPlan(p)

	if !strings.Contains(out, "article") {
		t.Errorf("rendering should name the entity: %s", out)
	}
	if !strings.Contains(out, "ownership") {
		t.Errorf("rendering should show the auth mode: %s", out)
	}
	if !strings.Contains(out, "authorId") {
		t.Errorf("rendering should show the ownership field: %s", out)
	}
	if !strings.Contains(out, "src/models/article.model") {
		t.Errorf("rendering should list artifact targets: %s", out)
	}
	if !strings.Contains(out, "authenticate") {
		t.Errorf("rendering should show middleware chains: %s", out)
	}
}

func TestRenderPlanDisabledRoute(t *testing.T) {
	p := testPlan(t)

	decision := p.Routes[domain.RouteDelete]
	decision.Emitted = false
	decision.MiddlewareChain = nil
	p.Routes[domain.RouteDelete] = decision

	out := RenderPlan(p)
	if !strings.Contains(out, "disabled") {
		t.Errorf("disabled routes should be marked: %s", out)
	}
}

func TestRenderArtifact(t *testing.T) {
	p := testPlan(t)

	service := p.Artifact(domain.ArtifactService)
	if service == nil {
		t.Fatal("plan should contain a service artifact")
	}

	out := RenderArtifact(service)
	if !strings.Contains(out, "src/services/article.service") {
		t.Errorf("explain output should show the target: %s", out)
	}
	if !strings.Contains(out, "beforeCreate") {
		t.Errorf("explain output should list hooks: %s", out)
	}
	if !strings.Contains(out, "owner id injected") {
		t.Errorf("explain output should surface the create contract: %s", out)
	}

	admin := p.Artifact(domain.ArtifactAdminRoute)
	if admin == nil {
		t.Fatal("plan should contain an admin route artifact")
	}
	out = RenderArtifact(admin)
	if !strings.Contains(out, "admin") {
		t.Errorf("admin explain output should list allowed roles: %s", out)
	}
}
