// Package pipeline provides the stage sequencer for envgate.
//
// This file implements the executors for the built-in stage types. Each
// executor adapts one capability interface (package manager, Python
// installer, version-control client, workspace selector, verification gate)
// to the sequencer's Executor contract, so the sequencer can be tested
// against fakes satisfying the same interfaces.
package pipeline

import (
	"context"

	"github.com/envgate/envgate/internal/domain"
	"github.com/envgate/envgate/internal/git"
	"github.com/envgate/envgate/internal/pypkg"
	"github.com/envgate/envgate/internal/syspkg"
	"github.com/envgate/envgate/internal/verify"
	"github.com/envgate/envgate/internal/workspace"
)

// Capabilities bundles the external collaborators the built-in executors
// delegate to.
type Capabilities struct {
	// System is the OS package manager.
	System syspkg.Manager

	// Python is the language package installer.
	Python pypkg.Installer

	// Source is the version-control client.
	Source git.Cloner

	// Workspace validates working-directory selections.
	Workspace *workspace.Selector

	// Verifier runs the toolkit's test suite.
	Verifier verify.Runner
}

// NewRegistry creates a registry with executors for all built-in stage
// types wired to the given capabilities.
func NewRegistry(c Capabilities) *ExecutorRegistry {
	r := NewExecutorRegistry()
	r.Register(domain.StageTypeSystemPackages, &systemPackagesExecutor{mgr: c.System})
	r.Register(domain.StageTypePythonPackages, &pythonPackagesExecutor{installer: c.Python})
	r.Register(domain.StageTypeFetchSource, &fetchSourceExecutor{cloner: c.Source})
	r.Register(domain.StageTypeSelectWorkspace, &selectWorkspaceExecutor{selector: c.Workspace})
	r.Register(domain.StageTypeVerify, &verifyExecutor{runner: c.Verifier})
	return r
}

// systemPackagesExecutor refreshes the OS package index and installs the
// stage's named packages. The two sub-commands form one logical stage; both
// must succeed.
type systemPackagesExecutor struct {
	mgr syspkg.Manager
}

func (e *systemPackagesExecutor) Execute(ctx context.Context, _ *domain.EnvState, stage *domain.Stage) (string, error) {
	if err := e.mgr.Refresh(ctx); err != nil {
		return "", err
	}
	return "", e.mgr.Install(ctx, stage.Spec.Packages)
}

// pythonPackagesExecutor installs the source-built package first, then the
// registry package. The ordering matters only insofar as a later failure
// must report the later sub-step's identity; there is no retry of the
// earlier one.
type pythonPackagesExecutor struct {
	installer pypkg.Installer
}

func (e *pythonPackagesExecutor) Execute(ctx context.Context, _ *domain.EnvState, stage *domain.Stage) (string, error) {
	if err := e.installer.InstallFromVCS(ctx, stage.Spec.VCSRef); err != nil {
		return "", err
	}
	return "", e.installer.InstallByName(ctx, stage.Spec.RegistryPackage)
}

// fetchSourceExecutor clones the toolkit repository.
type fetchSourceExecutor struct {
	cloner git.Cloner
}

func (e *fetchSourceExecutor) Execute(ctx context.Context, _ *domain.EnvState, stage *domain.Stage) (string, error) {
	return "", e.cloner.Clone(ctx, stage.Spec.RepoURL, stage.Spec.TargetPath)
}

// selectWorkspaceExecutor validates the workspace path. The actual pointer
// move is the stage's declared delta, applied by the sequencer on success.
type selectWorkspaceExecutor struct {
	selector *workspace.Selector
}

func (e *selectWorkspaceExecutor) Execute(_ context.Context, _ *domain.EnvState, stage *domain.Stage) (string, error) {
	return "", e.selector.Validate(stage.Spec.WorkDir)
}

// verifyExecutor runs the toolkit's test suite in the selected workspace.
// The test output is surfaced even when the run fails.
type verifyExecutor struct {
	runner verify.Runner
}

func (e *verifyExecutor) Execute(ctx context.Context, state *domain.EnvState, _ *domain.Stage) (string, error) {
	res, err := e.runner.RunTests(ctx, state.WorkDir())
	if res != nil {
		return res.Output, err
	}
	return "", err
}
