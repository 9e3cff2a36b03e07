package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envgate/envgate/internal/domain"
	envgateerrors "github.com/envgate/envgate/internal/errors"
)

func validPlanParams() PlanParams {
	return PlanParams{
		SystemPackages: []string{"git", "ffmpeg", "libsm6", "libxext6"},
		PythonVCSRef:   "git+https://github.com/colmap/pycolmap",
		PythonPackage:  "pytest",
		RepoURL:        "https://github.com/3DOM-FBK/deep-image-matching.git",
		TargetPath:     "/workspace/deep-image-matching",
		VerifyCommand:  []string{"pytest"},
	}
}

func TestBuildPlan_Order(t *testing.T) {
	t.Parallel()

	stages, err := BuildPlan(validPlanParams())
	require.NoError(t, err)
	require.Len(t, stages, 5)

	ids := make([]string, 0, len(stages))
	for _, s := range stages {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{
		StageIDSystemPackages,
		StageIDPythonPackages,
		StageIDFetchSource,
		StageIDSelectWorkspace,
		StageIDVerify,
	}, ids)

	assert.Equal(t, domain.StageTypeSystemPackages, stages[0].Type)
	assert.Equal(t, domain.StageTypePythonPackages, stages[1].Type)
	assert.Equal(t, domain.StageTypeFetchSource, stages[2].Type)
	assert.Equal(t, domain.StageTypeSelectWorkspace, stages[3].Type)
	assert.Equal(t, domain.StageTypeVerify, stages[4].Type)
}

func TestBuildPlan_SpecsAndDeltas(t *testing.T) {
	t.Parallel()

	p := validPlanParams()
	stages, err := BuildPlan(p)
	require.NoError(t, err)

	system := stages[0]
	assert.Equal(t, p.SystemPackages, system.Spec.Packages)
	assert.Equal(t, p.SystemPackages, system.Delta.SystemPackages)

	python := stages[1]
	assert.Equal(t, p.PythonVCSRef, python.Spec.VCSRef)
	assert.Equal(t, p.PythonPackage, python.Spec.RegistryPackage)
	assert.Equal(t, []string{p.PythonVCSRef, p.PythonPackage}, python.Delta.PythonPackages)

	fetch := stages[2]
	assert.Equal(t, p.RepoURL, fetch.Spec.RepoURL)
	assert.Equal(t, p.TargetPath, fetch.Spec.TargetPath)
	assert.Equal(t, []string{p.TargetPath}, fetch.Delta.Paths)

	selectWS := stages[3]
	assert.Equal(t, p.TargetPath, selectWS.Spec.WorkDir)
	assert.Equal(t, p.TargetPath, selectWS.Delta.WorkDir)

	gate := stages[4]
	assert.Equal(t, p.VerifyCommand, gate.Spec.Command)
	// A passing gate changes nothing; it only proves the environment.
	assert.True(t, gate.Delta.IsZero())
}

func TestBuildPlan_MissingParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*PlanParams)
	}{
		{"no system packages", func(p *PlanParams) { p.SystemPackages = nil }},
		{"no vcs ref", func(p *PlanParams) { p.PythonVCSRef = " " }},
		{"no python package", func(p *PlanParams) { p.PythonPackage = "" }},
		{"no repo url", func(p *PlanParams) { p.RepoURL = "" }},
		{"no target path", func(p *PlanParams) { p.TargetPath = "" }},
		{"no verify command", func(p *PlanParams) { p.VerifyCommand = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := validPlanParams()
			tc.mutate(&p)

			_, err := BuildPlan(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, envgateerrors.ErrEmptyValue)
		})
	}
}
