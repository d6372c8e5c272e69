package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunManifest records one planning invocation for later inspection.
// Unlike the plan itself, the manifest is not deterministic: it carries
// the run identity and timestamp.
type RunManifest struct {
	RunID         string    `json:"run_id"`
	Entity        string    `json:"entity"`
	Fingerprint   string    `json:"fingerprint"`
	PlanPath      string    `json:"plan_path"`
	ArtifactCount int       `json:"artifact_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewRunManifest creates a manifest for a generated plan.
func NewRunManifest(p *GenerationPlan, planPath string) RunManifest {
	return RunManifest{
		RunID:         uuid.NewString(),
		Entity:        p.Entity,
		Fingerprint:   p.Fingerprint,
		PlanPath:      planPath,
		ArtifactCount: len(p.Artifacts),
		CreatedAt:     time.Now().UTC(),
	}
}

// SaveManifest writes the manifest into the runs directory, named by its
// run ID, and returns the written path.
func SaveManifest(m RunManifest, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}

	path := filepath.Join(dir, m.RunID+".json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}

	return path, nil
}
