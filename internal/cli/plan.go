// Package cli provides the command-line interface for envgate.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/envgate/envgate/internal/domain"
	"github.com/envgate/envgate/internal/pipeline"
)

// AddPlanCommand adds the plan command to the root command.
func AddPlanCommand(root *cobra.Command) {
	root.AddCommand(newPlanCmd())
}

func newPlanCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the resolved provisioning plan without executing it",
		Long: `Resolve configuration (defaults, config files, environment, manifest) and
print the ordered stage list the run command would execute. Nothing is
installed, cloned, or run.

Examples:
  envgate plan
  envgate plan --manifest ./provision.yaml
  envgate plan --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&flags.Manifest, "manifest", "m", "", "path to a provisioning manifest (yaml)")

	return cmd
}

// planStageView is the JSON projection of a planned stage.
type planStageView struct {
	Position    int              `json:"position"`
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Spec        domain.StageSpec `json:"spec"`
}

func runPlan(ctx context.Context, cmd *cobra.Command, flags *runFlags, w io.Writer) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	outputFormat := cmd.Flag("output").Value.String()

	cfg, err := resolveConfig(ctx, flags.Manifest)
	if err != nil {
		return err
	}

	stages, err := pipeline.BuildPlan(planParamsFromConfig(cfg))
	if err != nil {
		return err
	}

	if outputFormat == OutputJSON {
		views := make([]planStageView, 0, len(stages))
		for i, stage := range stages {
			views = append(views, planStageView{
				Position:    i + 1,
				ID:          stage.ID,
				Type:        string(stage.Type),
				Description: stage.Description,
				Spec:        stage.Spec,
			})
		}
		return writeJSON(w, views)
	}

	renderPlanText(w, stages)
	return nil
}

// renderPlanText writes a human-readable stage listing.
func renderPlanText(w io.Writer, stages []domain.Stage) {
	fmt.Fprintf(w, "Provisioning plan (%d stages):\n\n", len(stages))
	for i, stage := range stages {
		fmt.Fprintf(w, "  %d. %-18s %s\n", i+1, stage.ID, stage.Description)
		for _, line := range describeSpec(stage) {
			fmt.Fprintf(w, "     %s\n", line)
		}
	}
}

// describeSpec renders the populated spec fields of a stage.
func describeSpec(stage domain.Stage) []string {
	var lines []string
	spec := stage.Spec

	if len(spec.Packages) > 0 {
		lines = append(lines, "packages: "+strings.Join(spec.Packages, ", "))
	}
	if spec.VCSRef != "" {
		lines = append(lines, "vcs ref: "+spec.VCSRef)
	}
	if spec.RegistryPackage != "" {
		lines = append(lines, "registry package: "+spec.RegistryPackage)
	}
	if spec.RepoURL != "" {
		lines = append(lines, "repo: "+spec.RepoURL)
	}
	if spec.TargetPath != "" {
		lines = append(lines, "target: "+spec.TargetPath)
	}
	if spec.WorkDir != "" {
		lines = append(lines, "workdir: "+spec.WorkDir)
	}
	if len(spec.Command) > 0 {
		lines = append(lines, "command: "+strings.Join(spec.Command, " "))
	}
	return lines
}
