package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tstackhq/tstack-kit/internal/errors"
	"github.com/tstackhq/tstack-kit/internal/log"
	"github.com/tstackhq/tstack-kit/internal/scaffold"
	"github.com/tstackhq/tstack-kit/internal/ux"
	"github.com/tstackhq/tstack-kit/internal/version"
)

var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Manage entity scaffold files",
	Long: `Validate and lock the entity scaffold files under .tstack/.

Use 'tstack-kit spec validate' to check every scaffold configuration.
Use 'tstack-kit spec lock' to record scaffold fingerprints for drift detection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var specValidateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate scaffold configurations",
	Long: `Normalize every scaffold file and report all configuration problems
at once: unknown auth modes, route conflicts, missing roles, unknown hooks.

Without arguments, every scaffold file under .tstack/ is validated.`,
	RunE: runSpecValidate,
}

var specLockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Record scaffold fingerprints",
	Long: `Fingerprint every scaffold configuration and write scaffold.lock.json.

A later run compares fingerprints against the lock to detect scaffold
drift: an entity whose configuration changed since its plan was created.
Use --check to report drift without rewriting the lock.`,
	RunE: runSpecLock,
}

// discoverScaffolds lists the scaffold files under the project directory,
// sorted so validation output is stable.
func discoverScaffolds(defaults *ux.PathDefaults) ([]string, error) {
	entries, err := os.ReadDir(defaults.TstackDir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(defaults.TstackDir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func loadConfigs(paths []string) ([]*scaffold.NormalizedConfig, error) {
	var configs []*scaffold.NormalizedConfig
	for _, path := range paths {
		spec, err := scaffold.LoadEntitySpec(path)
		if err != nil {
			return nil, ux.FormatError(err, fmt.Sprintf("loading %s", path))
		}

		cfg, err := scaffold.Normalize(*spec)
		if err != nil {
			return nil, ux.FormatError(err, fmt.Sprintf("validating %s", path))
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func runSpecValidate(cmd *cobra.Command, args []string) error {
	defaults := ux.NewPathDefaults()

	paths := args
	if len(paths) == 0 {
		if err := defaults.ValidateSetup(); err != nil {
			return err
		}
		var err error
		paths, err = discoverScaffolds(defaults)
		if err != nil {
			return ux.FormatError(err, "discovering scaffold files")
		}
	}

	if len(paths) == 0 {
		fmt.Println("No scaffold files found. Run 'tstack-kit new' to create one.")
		return nil
	}

	failed := false
	for _, path := range paths {
		spec, err := scaffold.LoadEntitySpec(path)
		if err != nil {
			return ux.FormatError(err, fmt.Sprintf("loading %s", path))
		}

		if _, err := scaffold.Normalize(*spec); err != nil {
			failed = true
			fmt.Printf("✗ %s\n  %v\n", path, err)
			continue
		}
		fmt.Printf("✓ %s\n", path)
	}

	if failed {
		return fmt.Errorf("one or more scaffold files failed validation")
	}

	fmt.Printf("\n%d scaffold file(s) valid\n", len(paths))
	return nil
}

func runSpecLock(cmd *cobra.Command, args []string) error {
	defaults := ux.NewPathDefaults()
	if err := defaults.ValidateSetup(); err != nil {
		return err
	}

	checkOnly, _ := cmd.Flags().GetBool("check")
	lockPath := defaults.LockFile()

	paths, err := discoverScaffolds(defaults)
	if err != nil {
		return ux.FormatError(err, "discovering scaffold files")
	}
	if len(paths) == 0 {
		fmt.Println("No scaffold files found. Run 'tstack-kit new' to create one.")
		return nil
	}

	configs, err := loadConfigs(paths)
	if err != nil {
		return err
	}

	if checkOnly {
		existing, err := scaffold.LoadLock(lockPath)
		if err != nil {
			return errors.New(errors.ErrCodeScaffoldLockNotFound, "scaffold lock not found").
				WithSuggestion("Run 'tstack-kit spec lock' to create it")
		}

		var driftList errors.List
		for _, cfg := range configs {
			locked, current, drifted, err := existing.Drift(cfg)
			if err != nil {
				return ux.FormatError(err, "checking drift")
			}
			if drifted {
				driftList.Append(errors.NewPlanDriftError(cfg.Names.LowerCamel, locked, current))
				fmt.Printf("✗ %s drifted\n", cfg.Names.LowerCamel)
			} else {
				fmt.Printf("✓ %s\n", cfg.Names.LowerCamel)
			}
		}

		if err := driftList.Err(); err != nil {
			return err
		}
		fmt.Println("\nNo drift detected")
		return nil
	}

	lock, err := scaffold.GenerateLock(configs, version.GetInfo().Short())
	if err != nil {
		return ux.FormatError(err, "generating scaffold lock")
	}

	if err := scaffold.SaveLock(lock, lockPath); err != nil {
		return ux.FormatError(err, "saving scaffold lock")
	}

	log.DefaultLogger().Info("scaffold lock written", "path", lockPath, "entities", len(lock.Entities))
	fmt.Printf("✓ Locked %d entit(ies) in %s\n", len(lock.Entities), lockPath)
	return nil
}

func init() {
	rootCmd.AddCommand(specCmd)
	specCmd.AddCommand(specValidateCmd)
	specCmd.AddCommand(specLockCmd)

	specLockCmd.Flags().Bool("check", false, "Report drift against the existing lock without rewriting it")
}
