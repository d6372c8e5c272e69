// Package ux provides path defaults, error enhancement, and output
// formatting shared by the CLI commands.
package ux

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathDefaults provides smart defaults for common file paths
type PathDefaults struct {
	TstackDir string
}

// NewPathDefaults creates a new PathDefaults with sensible defaults
func NewPathDefaults() *PathDefaults {
	return &PathDefaults{
		TstackDir: ".tstack",
	}
}

// ScaffoldFile returns the default path to an entity scaffold file
func (pd *PathDefaults) ScaffoldFile(entity string) string {
	return filepath.Join(pd.TstackDir, entity+".yaml")
}

// LockFile returns the default path to scaffold.lock.json
func (pd *PathDefaults) LockFile() string {
	return filepath.Join(pd.TstackDir, "scaffold.lock.json")
}

// PlanFile returns the default path to an entity's generation plan
func (pd *PathDefaults) PlanFile(entity string) string {
	return filepath.Join(pd.TstackDir, "plans", entity+".plan.json")
}

// PlansDir returns the directory holding generation plans
func (pd *PathDefaults) PlansDir() string {
	return filepath.Join(pd.TstackDir, "plans")
}

// OpenAPIFile returns the default path for an entity's OpenAPI sketch
func (pd *PathDefaults) OpenAPIFile(entity string) string {
	return filepath.Join(pd.TstackDir, "openapi", entity+".yaml")
}

// RunsDir returns the default run manifest directory
func (pd *PathDefaults) RunsDir() string {
	return filepath.Join(pd.TstackDir, "runs")
}

// ValidateSetup checks if the .tstack directory is initialized
func (pd *PathDefaults) ValidateSetup() error {
	if _, err := os.Stat(pd.TstackDir); os.IsNotExist(err) {
		return fmt.Errorf(".tstack directory not found. Run 'tstack-kit new' to set up your project")
	}
	return nil
}

// EnsureDirs creates the project directory layout if it is missing
func (pd *PathDefaults) EnsureDirs() error {
	for _, dir := range []string{pd.TstackDir, pd.PlansDir(), filepath.Join(pd.TstackDir, "openapi"), pd.RunsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// ValidateRequiredFile checks if a required file exists and provides helpful error
func ValidateRequiredFile(path string, fileType string, creationCommand string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s not found at: %s\n\nRun '%s' to create it", fileType, path, creationCommand)
	} else if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	return nil
}

// SuggestNextSteps provides contextual next steps based on what exists
func SuggestNextSteps(entity string) string {
	defaults := NewPathDefaults()

	_, hasTstack := os.Stat(defaults.TstackDir)
	_, hasScaffold := os.Stat(defaults.ScaffoldFile(entity))
	_, hasPlan := os.Stat(defaults.PlanFile(entity))
	_, hasLock := os.Stat(defaults.LockFile())

	if os.IsNotExist(hasTstack) {
		return "Run 'tstack-kit new' to set up your project"
	}

	if os.IsNotExist(hasScaffold) {
		return "Describe the entity with 'tstack-kit new' or write " + defaults.ScaffoldFile(entity)
	}

	if os.IsNotExist(hasPlan) {
		return "Generate a plan with 'tstack-kit plan create --entity " + entity + "'"
	}

	if os.IsNotExist(hasLock) {
		return "Record the scaffold fingerprint with 'tstack-kit spec lock'"
	}

	return "Review the plan with 'tstack-kit plan review --entity " + entity + "'"
}
