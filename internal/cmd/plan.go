package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tstackhq/tstack-kit/internal/domain"
	"github.com/tstackhq/tstack-kit/internal/log"
	"github.com/tstackhq/tstack-kit/internal/openapi"
	"github.com/tstackhq/tstack-kit/internal/plan"
	"github.com/tstackhq/tstack-kit/internal/scaffold"
	"github.com/tstackhq/tstack-kit/internal/tui"
	"github.com/tstackhq/tstack-kit/internal/ux"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage generation plans",
	Long: `Create, validate, and inspect generation plans.

Use 'tstack-kit plan create' to compute a plan from an entity scaffold.
Use 'tstack-kit plan validate' to validate plan structure.
Use 'tstack-kit plan explain' to inspect a single artifact.
Use 'tstack-kit plan visualize' to render the plan as text.
Use 'tstack-kit plan review' to interactively review a plan.
Use 'tstack-kit plan openapi' to sketch the planned route surface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var planCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a generation plan from an entity scaffold",
	Long: `Compute the ordered, dependency-linked artifact plan for one entity.

The entity is described either by a scaffold file (--in, or the default
.tstack/<entity>.yaml) or directly with flags. The resulting plan is
validated and written as JSON, and a run manifest is recorded.`,
	RunE: runPlanCreate,
}

var planValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate plan structure and dependencies",
	Long: `Validate a generation plan for structural correctness.

Checks:
- No duplicate artifact kinds
- All artifact dependencies exist
- No circular dependencies
- Ownership rules carry an ownership field
- Admin routes carry a role restriction`,
	RunE: runPlanValidate,
}

var planExplainCmd = &cobra.Command{
	Use:   "explain <artifact>",
	Short: "Explain one planned artifact",
	Long: `Show what a single artifact will contain: its target path, template
binding, dependencies, and the authorization outcome flowing into it.

Artifact kinds: model, dto, service, controller, route, adminRoute,
test, migration.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlanExplain,
}

var planVisualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Render the plan as a dependency listing",
	RunE:  runPlanVisualize,
}

var planReviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Interactively review a generation plan",
	Long: `Launch an interactive terminal UI to review the generation plan.

Navigate the artifact list, inspect each artifact's binding and
dependencies, and approve or reject the plan.`,
	RunE: runPlanReview,
}

var planOpenAPICmd = &cobra.Command{
	Use:   "openapi",
	Short: "Sketch the planned route surface as OpenAPI",
	Long: `Build an OpenAPI document from the plan's route decisions: one path
per collection and record, operations only for emitted routes, bearer
security on everything that is not public.

The sketch describes the planned surface, not the emitted project.`,
	RunE: runPlanOpenAPI,
}

// resolveEntitySpec loads the entity description for plan create: from an
// explicit scaffold file, from direct flags, or from the entity's default
// scaffold file, in that order.
func resolveEntitySpec(cmd *cobra.Command, defaults *ux.PathDefaults) (*scaffold.EntitySpec, error) {
	if cmd.Flags().Changed("in") {
		path, _ := cmd.Flags().GetString("in")
		return scaffold.LoadEntitySpec(path)
	}

	entity, _ := cmd.Flags().GetString("entity")
	if entity == "" {
		return nil, fmt.Errorf("either --entity or --in is required")
	}

	if specFromFlags(cmd) {
		spec := &scaffold.EntitySpec{Name: entity}
		spec.Auth, _ = cmd.Flags().GetString("auth")
		spec.Roles, _ = cmd.Flags().GetStringSlice("roles")
		spec.PublicRoutes, _ = cmd.Flags().GetStringSlice("public-routes")
		spec.DisabledRoutes, _ = cmd.Flags().GetStringSlice("disabled-routes")
		spec.Hooks, _ = cmd.Flags().GetStringSlice("hooks")
		spec.WithAdmin, _ = cmd.Flags().GetBool("with-admin")
		spec.WithTests, _ = cmd.Flags().GetBool("with-tests")
		spec.SkipMigration, _ = cmd.Flags().GetBool("skip-migration")

		if cmd.Flags().Changed("ownership-field") {
			field, _ := cmd.Flags().GetString("ownership-field")
			spec.OwnershipField = &field
		}
		return spec, nil
	}

	path := defaults.ScaffoldFile(entity)
	if err := ux.ValidateRequiredFile(path, "Scaffold file", "tstack-kit new"); err != nil {
		return nil, ux.EnhanceError(err)
	}
	return scaffold.LoadEntitySpec(path)
}

// specFromFlags reports whether any entity configuration flag was given,
// meaning the scaffold is described inline rather than by file.
func specFromFlags(cmd *cobra.Command) bool {
	for _, name := range []string{
		"auth", "ownership-field", "roles", "public-routes",
		"disabled-routes", "hooks", "with-admin", "with-tests", "skip-migration",
	} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func planPathFor(cmd *cobra.Command, defaults *ux.PathDefaults, entity string) string {
	if cmd.Flags().Changed("plan") {
		path, _ := cmd.Flags().GetString("plan")
		return path
	}
	return defaults.PlanFile(entity)
}

func loadPlanArg(cmd *cobra.Command) (*plan.GenerationPlan, string, error) {
	defaults := ux.NewPathDefaults()
	entity, _ := cmd.Flags().GetString("entity")

	path := planPathFor(cmd, defaults, entity)
	if !cmd.Flags().Changed("plan") && entity == "" {
		return nil, "", fmt.Errorf("either --entity or --plan is required")
	}

	if err := ux.ValidateRequiredFile(path, "Plan file", "tstack-kit plan create"); err != nil {
		return nil, "", ux.EnhanceError(err)
	}

	p, err := plan.LoadPlan(path)
	if err != nil {
		return nil, "", ux.FormatError(err, "loading plan file")
	}
	return p, path, nil
}

func runPlanCreate(cmd *cobra.Command, args []string) error {
	defaults := ux.NewPathDefaults()

	spec, err := resolveEntitySpec(cmd, defaults)
	if err != nil {
		return ux.FormatError(err, "resolving entity scaffold")
	}

	cfg, err := scaffold.Normalize(*spec)
	if err != nil {
		// Configuration errors carry their own codes and suggestions.
		return err
	}

	p, err := plan.Generate(cfg)
	if err != nil {
		return ux.FormatError(err, "generating plan")
	}

	if err := p.Validate(); err != nil {
		return err
	}

	if err := defaults.EnsureDirs(); err != nil {
		return ux.FormatError(err, "initializing project layout")
	}

	out := planPathFor(cmd, defaults, p.Entity)
	if err := plan.SavePlan(p, out); err != nil {
		return ux.FormatError(err, "saving plan file")
	}

	manifest := plan.NewRunManifest(p, out)
	manifestPath, err := plan.SaveManifest(manifest, defaults.RunsDir())
	if err != nil {
		return ux.FormatError(err, "saving run manifest")
	}

	logger := log.DefaultLogger()
	logger.Info("plan created",
		"entity", p.Entity,
		"artifacts", len(p.Artifacts),
		"run_id", manifest.RunID,
	)

	fmt.Printf("✓ Generated plan for %q with %d artifacts\n", p.Entity, len(p.Artifacts))
	for _, artifact := range p.Artifacts {
		deps := "no dependencies"
		if len(artifact.DependsOn) > 0 {
			deps = fmt.Sprintf("%d dependencies", len(artifact.DependsOn))
		}
		fmt.Printf("  %-12s %s (%s)\n", artifact.Kind, artifact.Target, deps)
	}
	fmt.Printf("\nPlan: %s\nManifest: %s\n", out, manifestPath)
	fmt.Println("\nNext steps:")
	fmt.Printf("  1. Review the plan: tstack-kit plan review --entity %s\n", p.Entity)
	fmt.Printf("  2. Lock the scaffold: tstack-kit spec lock\n")

	return nil
}

func runPlanValidate(cmd *cobra.Command, args []string) error {
	// LoadPlan validates after unmarshalling, so a loaded plan is a valid plan.
	p, path, err := loadPlanArg(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Plan %s is valid (%d artifacts, %d routes emitted)\n",
		path, len(p.Artifacts), len(p.EmittedRoutes()))
	return nil
}

func runPlanExplain(cmd *cobra.Command, args []string) error {
	p, _, err := loadPlanArg(cmd)
	if err != nil {
		return err
	}

	kind, err := domain.NewArtifactKind(args[0])
	if err != nil {
		return err
	}

	artifact := p.Artifact(kind)
	if artifact == nil {
		return fmt.Errorf("plan for %q does not contain a %s artifact", p.Entity, kind)
	}

	fmt.Println(tui.RenderArtifact(artifact))
	return nil
}

func runPlanVisualize(cmd *cobra.Command, args []string) error {
	p, _, err := loadPlanArg(cmd)
	if err != nil {
		return err
	}

	fmt.Println(tui.RenderPlan(p))
	return nil
}

func runPlanReview(cmd *cobra.Command, args []string) error {
	p, path, err := loadPlanArg(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("=== Plan Review ===\n")
	fmt.Printf("Plan: %s (%d artifacts)\n\n", path, len(p.Artifacts))

	result, err := tui.RunPlanReview(p)
	if err != nil {
		return ux.FormatError(err, "running plan review")
	}

	if result.Approved {
		fmt.Printf("\n✓ Plan approved\n")
		fmt.Println("\nNext steps:")
		fmt.Printf("  1. Lock the scaffold: tstack-kit spec lock\n")
	} else {
		fmt.Printf("\n✗ Plan rejected\n")
		if result.Reason != "" {
			fmt.Printf("  Reason: %s\n", result.Reason)
		}
		fmt.Println("\nNext steps:")
		fmt.Printf("  1. Edit the scaffold file under .tstack/\n")
		fmt.Printf("  2. Regenerate: tstack-kit plan create --entity %s\n", p.Entity)
	}

	return nil
}

func runPlanOpenAPI(cmd *cobra.Command, args []string) error {
	defaults := ux.NewPathDefaults()

	p, _, err := loadPlanArg(cmd)
	if err != nil {
		return err
	}

	doc, err := openapi.BuildDocument(cmd.Context(), p)
	if err != nil {
		return ux.FormatError(err, "building OpenAPI document")
	}

	out, _ := cmd.Flags().GetString("out")
	if !cmd.Flags().Changed("out") {
		out = defaults.OpenAPIFile(p.Entity)
	}

	if err := openapi.SaveDocument(doc, out); err != nil {
		return ux.FormatError(err, "saving OpenAPI document")
	}

	fmt.Printf("✓ OpenAPI sketch written to %s\n", out)
	return nil
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planValidateCmd)
	planCmd.AddCommand(planExplainCmd)
	planCmd.AddCommand(planVisualizeCmd)
	planCmd.AddCommand(planReviewCmd)
	planCmd.AddCommand(planOpenAPICmd)

	// plan create flags
	planCreateCmd.Flags().StringP("entity", "e", "", "Entity name")
	planCreateCmd.Flags().StringP("in", "i", "", "Scaffold file to plan from")
	planCreateCmd.Flags().String("plan", "", "Output plan file (default .tstack/plans/<entity>.plan.json)")
	planCreateCmd.Flags().String("auth", "", "Authorization mode (none, ownership, role, custom)")
	planCreateCmd.Flags().String("ownership-field", "", "Record field holding the owner's id")
	planCreateCmd.Flags().StringSlice("roles", nil, "Allowed roles for role auth")
	planCreateCmd.Flags().StringSlice("public-routes", nil, "Routes reachable without authentication")
	planCreateCmd.Flags().StringSlice("disabled-routes", nil, "Routes to omit entirely")
	planCreateCmd.Flags().StringSlice("hooks", nil, "Lifecycle hook placeholders to generate")
	planCreateCmd.Flags().Bool("with-admin", false, "Generate admin routes")
	planCreateCmd.Flags().Bool("with-tests", false, "Generate integration tests")
	planCreateCmd.Flags().Bool("skip-migration", false, "Skip the database migration")

	// Shared flags on the inspection subcommands
	for _, sub := range []*cobra.Command{planValidateCmd, planExplainCmd, planVisualizeCmd, planReviewCmd, planOpenAPICmd} {
		sub.Flags().StringP("entity", "e", "", "Entity name")
		sub.Flags().String("plan", "", "Plan file (default .tstack/plans/<entity>.plan.json)")
	}
	planOpenAPICmd.Flags().StringP("out", "o", "", "Output file (default .tstack/openapi/<entity>.yaml)")
}
