package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tstackhq/tstack-kit/internal/plan"
	"github.com/tstackhq/tstack-kit/internal/scaffold"
)

func testPlan(t *testing.T) *plan.GenerationPlan {
	t.Helper()

	field := "authorId"
	cfg, err := scaffold.Normalize(scaffold.EntitySpec{
		Name:           "article",
		Auth:           "ownership",
		OwnershipField: &field,
		PublicRoutes:   []string{"getAll", "getById"},
		Hooks:          []string{"beforeCreate"},
		WithAdmin:      true,
	})
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	p, err := plan.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return p
}

func TestRunPlanReview_EmptyPlan(t *testing.T) {
	result, err := RunPlanReview(&plan.GenerationPlan{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !result.Approved {
		t.Error("Expected empty plan to be auto-approved")
	}
}

func TestReviewModel_Init(t *testing.T) {
	model := reviewModel{
		plan:     testPlan(t),
		viewMode: "list",
	}
	if cmd := model.Init(); cmd != nil {
		t.Error("Expected Init to return nil cmd")
	}
}

func TestReviewModel_Navigation(t *testing.T) {
	p := testPlan(t)
	model := reviewModel{
		plan:     p,
		cursor:   0,
		viewMode: "list",
	}

	updatedModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m := updatedModel.(reviewModel)
	if m.cursor != 1 {
		t.Errorf("Expected cursor at 1, got %d", m.cursor)
	}

	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = updatedModel.(reviewModel)
	if m.cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", m.cursor)
	}

	// Can't go below 0
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = updatedModel.(reviewModel)
	if m.cursor != 0 {
		t.Errorf("Expected cursor to stay at 0, got %d", m.cursor)
	}

	// Can't exceed artifact count
	model.cursor = len(p.Artifacts) - 1
	updatedModel, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = updatedModel.(reviewModel)
	if m.cursor != len(p.Artifacts)-1 {
		t.Errorf("Expected cursor to stay at max, got %d", m.cursor)
	}
}

func TestReviewModel_ViewModes(t *testing.T) {
	model := reviewModel{
		plan:     testPlan(t),
		viewMode: "list",
	}

	updatedModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := updatedModel.(reviewModel)
	if m.viewMode != "detail" {
		t.Errorf("Expected view mode 'detail', got %s", m.viewMode)
	}

	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updatedModel.(reviewModel)
	if m.viewMode != "list" {
		t.Errorf("Expected view mode 'list', got %s", m.viewMode)
	}
}

func TestReviewModel_Approve(t *testing.T) {
	model := reviewModel{
		plan:     testPlan(t),
		viewMode: "list",
	}

	updatedModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m := updatedModel.(reviewModel)

	if m.result == nil || !m.result.Approved {
		t.Error("Expected plan to be approved")
	}
	if cmd == nil {
		t.Error("Expected quit command after approval")
	}
}

func TestReviewModel_RejectWithReason(t *testing.T) {
	model := reviewModel{
		plan:     testPlan(t),
		viewMode: "list",
	}

	updatedModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m := updatedModel.(reviewModel)
	if !m.editingReason {
		t.Fatal("Expected rejection reason editing to start")
	}

	for _, ch := range "bad" {
		updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ch}})
		m = updatedModel.(reviewModel)
	}

	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updatedModel.(reviewModel)

	if m.result == nil || m.result.Approved {
		t.Fatal("Expected plan to be rejected")
	}
	if m.result.Reason != "bad" {
		t.Errorf("Expected reason 'bad', got %q", m.result.Reason)
	}
	if cmd == nil {
		t.Error("Expected quit command after rejection")
	}
}

func TestReviewModel_QuitDefaultsToRejected(t *testing.T) {
	model := reviewModel{
		plan:     testPlan(t),
		viewMode: "list",
	}

	updatedModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m := updatedModel.(reviewModel)

	if m.result == nil || m.result.Approved {
		t.Error("Expected undecided quit to reject the plan")
	}
	if m.result.Reason != "Review cancelled" {
		t.Errorf("Expected cancellation reason, got %q", m.result.Reason)
	}
}

func TestReviewModel_View(t *testing.T) {
	p := testPlan(t)
	model := reviewModel{
		plan:     p,
		viewMode: "list",
	}

	view := model.View()
	if !strings.Contains(view, "article") {
		t.Errorf("List view should name the entity: %s", view)
	}
	if !strings.Contains(view, "model") {
		t.Errorf("List view should list artifact kinds: %s", view)
	}

	model.viewMode = "detail"
	view = model.View()
	if !strings.Contains(view, "Target") {
		t.Errorf("Detail view should show the target: %s", view)
	}
}
