// Package cli provides the command-line interface for envgate.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/envgate/envgate/internal/command"
	"github.com/envgate/envgate/internal/config"
	"github.com/envgate/envgate/internal/domain"
	"github.com/envgate/envgate/internal/git"
	"github.com/envgate/envgate/internal/manifest"
	"github.com/envgate/envgate/internal/pipeline"
	"github.com/envgate/envgate/internal/pypkg"
	"github.com/envgate/envgate/internal/syspkg"
	"github.com/envgate/envgate/internal/verify"
	"github.com/envgate/envgate/internal/workspace"
)

// runFlags holds flags specific to the run command.
type runFlags struct {
	// Manifest is an optional path to a provisioning manifest that overrides
	// the resolved configuration.
	Manifest string
	// Timeout bounds the whole run. Zero means no deadline.
	Timeout time.Duration
}

// AddRunCommand adds the run command to the root command.
func AddRunCommand(root *cobra.Command) {
	root.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Provision the environment and run the verification gate",
		Long: `Execute the full provisioning pipeline in order:

  1. system-packages   - refresh the package index and install OS packages
  2. python-packages   - install python packages (source build, then registry)
  3. fetch-source      - clone the toolkit repository
  4. select-workspace  - select the checkout as the working directory
  5. verify            - run the toolkit's test suite

The first failing stage halts the run. The process exit code is the failed
tool's own exit code, so a failing test suite surfaces pytest's exit status
unchanged.

Examples:
  envgate run
  envgate run --manifest ./provision.yaml
  envgate run --timeout 30m --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProvision(cmd.Context(), cmd, flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&flags.Manifest, "manifest", "m", "", "path to a provisioning manifest (yaml)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "abort the run after this duration (0 = no limit)")

	return cmd
}

func runProvision(ctx context.Context, cmd *cobra.Command, flags *runFlags, w io.Writer) error {
	// Check context cancellation
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if flags.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.Timeout)
		defer cancel()
	}

	logger := GetLogger()
	outputFormat := cmd.Flag("output").Value.String()

	cfg, err := resolveConfig(ctx, flags.Manifest)
	if err != nil {
		return err
	}

	// Fail before any stage runs if a required tool is missing from PATH.
	lookup := &config.DefaultToolLookup{}
	if err = config.Preflight(ctx, lookup, config.RequiredTools(cfg)); err != nil {
		return err
	}

	stages, err := pipeline.BuildPlan(planParamsFromConfig(cfg))
	if err != nil {
		return err
	}

	runner := &command.DefaultRunner{}
	registry := pipeline.NewRegistry(pipeline.Capabilities{
		System:    syspkg.NewAptManager(runner, cfg.Provision.NonInteractiveEnv, logger),
		Python:    pypkg.NewPipInstaller(runner, logger),
		Source:    git.NewCLIClient(runner, logger),
		Workspace: workspace.NewSelector(logger),
		Verifier:  verify.NewCommandGate(cfg.Verify.Command, runner, logger),
	})

	engine := pipeline.NewEngine(registry, logger)
	result, runErr := engine.Run(ctx, stages, domain.NewEnvState())

	if outputFormat == OutputJSON {
		if jsonErr := writeJSON(w, result); jsonErr != nil {
			return jsonErr
		}
		return runErr
	}

	renderResultText(w, result)
	return runErr
}

// resolveConfig loads configuration, overlays the manifest when one was
// given, and validates the merged result.
func resolveConfig(ctx context.Context, manifestPath string) (*config.Config, error) {
	logger := GetLogger()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}

	if manifestPath != "" {
		m, mErr := manifest.Load(manifestPath)
		if mErr != nil {
			return nil, mErr
		}
		if mErr = m.Validate(); mErr != nil {
			return nil, mErr
		}
		config.ApplyManifest(cfg, m)
	}

	if err = config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// planParamsFromConfig maps resolved configuration onto plan parameters.
func planParamsFromConfig(cfg *config.Config) pipeline.PlanParams {
	return pipeline.PlanParams{
		SystemPackages: cfg.Provision.SystemPackages,
		PythonVCSRef:   cfg.Provision.PythonVCSRef,
		PythonPackage:  cfg.Provision.PythonPackage,
		RepoURL:        cfg.Provision.RepoURL,
		TargetPath:     cfg.Provision.TargetPath,
		VerifyCommand:  cfg.Verify.Command,
	}
}

// writeJSON renders any value as indented JSON on the given writer.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderResultText writes a human-readable run summary.
func renderResultText(w io.Writer, result *domain.PipelineResult) {
	if result == nil {
		return
	}

	fmt.Fprintf(w, "Run %s\n\n", result.RunID)
	for i, sr := range result.Stages {
		fmt.Fprintf(w, "  [%d/%d] %-18s %s (%s)\n",
			i+1, len(result.Stages), sr.StageID, sr.Status, formatDuration(sr.DurationMs))
		if sr.Error != "" {
			fmt.Fprintf(w, "         %s\n", sr.Error)
		}
	}
	fmt.Fprintln(w)

	if result.Succeeded() {
		fmt.Fprintf(w, "Environment provisioned and verified (workdir: %s)\n", result.FinalState.WorkDir)
		return
	}

	fmt.Fprintf(w, "Provisioning failed at stage %q (position %d), exit code %d\n",
		result.FailedStage, result.FailedPosition, result.ExitCode)
}

// formatDuration renders a millisecond duration compactly for stage summaries.
func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d < time.Second {
		return fmt.Sprintf("%dms", ms)
	}
	s := d.Round(100 * time.Millisecond).String()
	return strings.Replace(s, "m0s", "m", 1)
}
