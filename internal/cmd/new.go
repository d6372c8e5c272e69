package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tstackhq/tstack-kit/internal/scaffold"
	"github.com/tstackhq/tstack-kit/internal/tui"
	"github.com/tstackhq/tstack-kit/internal/ux"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Describe a new entity scaffold interactively",
	Long: `Walk through describing an entity scaffold: name, authorization mode,
route visibility, lifecycle hooks, and extras.

The answers are written as a scaffold file under .tstack/ so they can be
versioned, edited by hand, and replanned later.`,
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	spec, err := tui.RunWizard()
	if err != nil {
		return ux.FormatError(err, "describing entity")
	}

	// Surface configuration problems now, while the user can still fix
	// them in one pass.
	if _, err := scaffold.Normalize(*spec); err != nil {
		return ux.FormatError(err, "validating entity configuration")
	}

	defaults := ux.NewPathDefaults()
	if err := defaults.EnsureDirs(); err != nil {
		return ux.FormatError(err, "initializing project layout")
	}

	out := cmd.Flags().Lookup("out").Value.String()
	if !cmd.Flags().Changed("out") {
		out = defaults.ScaffoldFile(spec.Name)
	}

	if err := scaffold.SaveEntitySpec(spec, out); err != nil {
		return ux.FormatError(err, "saving scaffold file")
	}

	fmt.Printf("✓ Scaffold written to %s\n", out)
	fmt.Println("\nNext steps:")
	fmt.Printf("  1. Create a plan: tstack-kit plan create --entity %s\n", spec.Name)
	fmt.Printf("  2. Review it:     tstack-kit plan review --entity %s\n", spec.Name)

	return nil
}

func init() {
	newCmd.Flags().StringP("out", "o", "", "Output scaffold file (default .tstack/<entity>.yaml)")

	rootCmd.AddCommand(newCmd)
}
