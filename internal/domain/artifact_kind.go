package domain

import "fmt"

// ArtifactKind represents one generated source artifact in a scaffold plan.
type ArtifactKind string

// Valid artifact kinds
const (
	ArtifactModel      ArtifactKind = "model"
	ArtifactDTO        ArtifactKind = "dto"
	ArtifactService    ArtifactKind = "service"
	ArtifactController ArtifactKind = "controller"
	ArtifactRoute      ArtifactKind = "route"
	ArtifactAdminRoute ArtifactKind = "adminRoute"
	ArtifactTest       ArtifactKind = "test"
	ArtifactMigration  ArtifactKind = "migration"
)

// NewArtifactKind creates a new ArtifactKind value object with validation
func NewArtifactKind(value string) (ArtifactKind, error) {
	a := ArtifactKind(value)
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// Validate checks if the artifact kind is valid
func (a ArtifactKind) Validate() error {
	switch a {
	case ArtifactModel, ArtifactDTO, ArtifactService, ArtifactController,
		ArtifactRoute, ArtifactAdminRoute, ArtifactTest, ArtifactMigration:
		return nil
	default:
		return fmt.Errorf("invalid artifact kind %q", string(a))
	}
}

// String returns the string representation
func (a ArtifactKind) String() string {
	return string(a)
}
