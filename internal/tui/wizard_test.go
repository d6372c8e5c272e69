package tui

import (
	"reflect"
	"testing"

	"github.com/tstackhq/tstack-kit/internal/scaffold"
)

func TestWizardAnswersToEntitySpec(t *testing.T) {
	answers := WizardAnswers{
		Name:           "  article ",
		Auth:           "role",
		Roles:          "admin, editor, ,admin",
		PublicRoutes:   []string{"getAll"},
		DisabledRoutes: []string{"delete"},
		Hooks:          []string{"beforeCreate", "afterDelete"},
		WithAdmin:      true,
		WithTests:      true,
	}

	spec := answers.ToEntitySpec()

	if spec.Name != "article" {
		t.Errorf("Name = %q, want trimmed 'article'", spec.Name)
	}
	if spec.Auth != "role" {
		t.Errorf("Auth = %q, want 'role'", spec.Auth)
	}
	// Dedup happens during normalization; the wizard only trims and drops blanks.
	if !reflect.DeepEqual(spec.Roles, []string{"admin", "editor", "admin"}) {
		t.Errorf("Roles = %v", spec.Roles)
	}
	if spec.OwnershipField != nil {
		t.Errorf("OwnershipField should stay unset when blank, got %v", *spec.OwnershipField)
	}
	if !spec.WithAdmin || !spec.WithTests || spec.SkipMigration {
		t.Error("flag answers should carry through")
	}

	// The assembled spec must survive normalization.
	if _, err := scaffold.Normalize(*spec); err != nil {
		t.Errorf("Normalize() on wizard output: %v", err)
	}
}

func TestWizardAnswersOwnershipField(t *testing.T) {
	answers := WizardAnswers{
		Name:           "article",
		Auth:           "ownership",
		OwnershipField: " authorId ",
	}

	spec := answers.ToEntitySpec()
	if spec.OwnershipField == nil || *spec.OwnershipField != "authorId" {
		t.Errorf("OwnershipField not carried: %v", spec.OwnershipField)
	}
}

func TestNewWizardForm(t *testing.T) {
	answers := &WizardAnswers{Auth: "none"}
	form := NewWizardForm(answers)
	if form == nil {
		t.Fatal("NewWizardForm returned nil")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"admin", []string{"admin"}},
		{"admin, editor", []string{"admin", "editor"}},
	}

	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
