package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Lock records the fingerprint of every entity configuration that has
// been planned, so a later run can tell whether the scaffold changed
// since the last generation.
type Lock struct {
	Version  string                  `json:"version"`
	Entities map[string]LockedEntity `json:"entities"`
}

// LockedEntity holds the fingerprint and generated artifact locations
// for one entity.
type LockedEntity struct {
	Fingerprint string `json:"fingerprint"` // blake3(canonical config JSON)
	PlanPath    string `json:"plan_path"`
	OpenAPIPath string `json:"openapi_path,omitempty"`
}

// GenerateLock creates a Lock from a set of normalized configurations.
func GenerateLock(configs []*NormalizedConfig, version string) (*Lock, error) {
	lock := &Lock{
		Version:  version,
		Entities: make(map[string]LockedEntity, len(configs)),
	}

	for _, cfg := range configs {
		fingerprint, err := Fingerprint(cfg)
		if err != nil {
			return nil, fmt.Errorf("fingerprint entity %s: %w", cfg.Names.LowerCamel, err)
		}

		lock.Entities[cfg.Names.LowerCamel] = LockedEntity{
			Fingerprint: fingerprint,
			PlanPath:    fmt.Sprintf(".tstack/plans/%s.plan.json", cfg.Names.LowerCamel),
			OpenAPIPath: fmt.Sprintf(".tstack/openapi/%s.yaml", cfg.Names.LowerCamel),
		}
	}

	return lock, nil
}

// Drift compares a configuration against the lock and returns the locked
// fingerprint, the current fingerprint, and whether they differ. An entity
// absent from the lock is not drift; it simply has not been planned yet.
func (l *Lock) Drift(cfg *NormalizedConfig) (locked string, current string, drifted bool, err error) {
	current, err = Fingerprint(cfg)
	if err != nil {
		return "", "", false, err
	}

	entry, ok := l.Entities[cfg.Names.LowerCamel]
	if !ok {
		return "", current, false, nil
	}
	return entry.Fingerprint, current, entry.Fingerprint != current, nil
}

// SaveLock writes a Lock to disk
func SaveLock(lock *Lock, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Marshal with indentation for readability
	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scaffold lock: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write scaffold lock: %w", err)
	}

	return nil
}

// LoadLock reads a Lock from disk
func LoadLock(path string) (*Lock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaffold lock: %w", err)
	}

	var lock Lock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, fmt.Errorf("unmarshal scaffold lock: %w", err)
	}

	return &lock, nil
}
