package scaffold

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"

	"github.com/tstackhq/tstack-kit/internal/domain"
)

// Canonicalize returns a canonical JSON representation of a normalized
// configuration with stable ordering for consistent hashing.
func Canonicalize(cfg *NormalizedConfig) ([]byte, error) {
	data := map[string]interface{}{
		"entityName":     cfg.Names.LowerCamel,
		"tableName":      cfg.Names.TableName,
		"auth":           string(cfg.Auth),
		"publicRoutes":   routeSetList(cfg.PublicRoutes),
		"disabledRoutes": routeSetList(cfg.DisabledRoutes),
		"roles":          sortedCopy(cfg.Roles),
		"hooks":          hookList(cfg.Hooks),
		"withAdmin":      cfg.WithAdmin,
		"withTests":      cfg.WithTests,
		"skipMigration":  cfg.SkipMigration,
	}

	if cfg.OwnershipField != "" {
		data["ownershipField"] = cfg.OwnershipField
	}

	// json.Marshal already emits map keys in sorted order; the list
	// values above carry their own stable ordering.
	return json.Marshal(data)
}

// Fingerprint computes the blake3 hash of a canonicalized configuration.
// Identical configurations always produce identical fingerprints, which
// is what makes regeneration idempotent and drift detectable.
func Fingerprint(cfg *NormalizedConfig) (string, error) {
	canonical, err := Canonicalize(cfg)
	if err != nil {
		return "", fmt.Errorf("canonicalize config: %w", err)
	}

	hasher := blake3.New()
	if _, err := hasher.Write(canonical); err != nil {
		return "", fmt.Errorf("hash config: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// routeSetList converts a route set to a list in emission order.
func routeSetList(set map[domain.RouteKind]bool) []string {
	list := make([]string, 0, len(set))
	for _, kind := range domain.AllRouteKinds {
		if set[kind] {
			list = append(list, string(kind))
		}
	}
	return list
}

func hookList(hooks []domain.HookKind) []string {
	list := make([]string, len(hooks))
	for i, hook := range hooks {
		list[i] = string(hook)
	}
	return list
}

func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
