// Package pipeline provides the stage sequencer for envgate.
//
// This file builds the fixed provisioning plan. The stage order is not
// configurable: base image → OS packages → language packages → source
// checkout → workspace selection → verification, dependency order equal to
// declaration order. Determinism outranks speed; stages are never reordered
// even where no data dependency exists.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/envgate/envgate/internal/domain"
	envgateerrors "github.com/envgate/envgate/internal/errors"
)

// Stage identifiers of the built-in plan, in execution order.
const (
	StageIDSystemPackages  = "system-packages"
	StageIDPythonPackages  = "python-packages"
	StageIDFetchSource     = "fetch-source"
	StageIDSelectWorkspace = "select-workspace"
	StageIDVerify          = "verify"
)

// PlanParams carries the provisioning parameters the plan is built from.
type PlanParams struct {
	// SystemPackages are the OS packages to install.
	SystemPackages []string

	// PythonVCSRef is the source-built Python package reference.
	PythonVCSRef string

	// PythonPackage is the registry-resolved Python package name.
	PythonPackage string

	// RepoURL is the toolkit repository to clone.
	RepoURL string

	// TargetPath is the clone destination and subsequent workspace.
	TargetPath string

	// VerifyCommand is the test runner invocation.
	VerifyCommand []string
}

// BuildPlan constructs the ordered stage list for the given parameters.
//
// The index refresh and the package install are modeled as two sub-commands
// of one logical system-packages stage; nothing downstream depends on them
// being separate invocations.
func BuildPlan(p PlanParams) ([]domain.Stage, error) {
	if err := validatePlanParams(p); err != nil {
		return nil, err
	}

	stages := []domain.Stage{
		{
			ID:          StageIDSystemPackages,
			Type:        domain.StageTypeSystemPackages,
			Description: "refresh the package index and install system packages",
			Spec: domain.StageSpec{
				Packages: p.SystemPackages,
			},
			Delta: domain.StateDelta{
				SystemPackages: p.SystemPackages,
			},
		},
		{
			ID:          StageIDPythonPackages,
			Type:        domain.StageTypePythonPackages,
			Description: "install python packages (source build, then registry)",
			Spec: domain.StageSpec{
				VCSRef:          p.PythonVCSRef,
				RegistryPackage: p.PythonPackage,
			},
			Delta: domain.StateDelta{
				PythonPackages: []string{p.PythonVCSRef, p.PythonPackage},
			},
		},
		{
			ID:          StageIDFetchSource,
			Type:        domain.StageTypeFetchSource,
			Description: "clone the toolkit repository",
			Spec: domain.StageSpec{
				RepoURL:    p.RepoURL,
				TargetPath: p.TargetPath,
			},
			Delta: domain.StateDelta{
				Paths: []string{p.TargetPath},
			},
		},
		{
			ID:          StageIDSelectWorkspace,
			Type:        domain.StageTypeSelectWorkspace,
			Description: "select the toolkit checkout as the working directory",
			Spec: domain.StageSpec{
				WorkDir: p.TargetPath,
			},
			Delta: domain.StateDelta{
				WorkDir: p.TargetPath,
			},
		},
		{
			ID:          StageIDVerify,
			Type:        domain.StageTypeVerify,
			Description: "run the toolkit's test suite as the verification gate",
			Spec: domain.StageSpec{
				Command: p.VerifyCommand,
			},
			// The gate declares no delta: a passing run changes nothing,
			// it only proves the environment usable.
		},
	}

	return stages, nil
}

func validatePlanParams(p PlanParams) error {
	if len(p.SystemPackages) == 0 {
		return fmt.Errorf("%w: system packages", envgateerrors.ErrEmptyValue)
	}
	if strings.TrimSpace(p.PythonVCSRef) == "" {
		return fmt.Errorf("%w: python vcs ref", envgateerrors.ErrEmptyValue)
	}
	if strings.TrimSpace(p.PythonPackage) == "" {
		return fmt.Errorf("%w: python package", envgateerrors.ErrEmptyValue)
	}
	if strings.TrimSpace(p.RepoURL) == "" {
		return fmt.Errorf("%w: repo url", envgateerrors.ErrEmptyValue)
	}
	if strings.TrimSpace(p.TargetPath) == "" {
		return fmt.Errorf("%w: target path", envgateerrors.ErrEmptyValue)
	}
	if len(p.VerifyCommand) == 0 {
		return fmt.Errorf("%w: verify command", envgateerrors.ErrEmptyValue)
	}
	return nil
}
