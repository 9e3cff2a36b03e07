package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvState_Empty(t *testing.T) {
	t.Parallel()

	state := NewEnvState()
	assert.Empty(t, state.WorkDir())
	assert.False(t, state.HasSystemPackage("git"))
	assert.False(t, state.HasPythonPackage("pytest"))
	assert.False(t, state.HasPath("/workspace"))
}

func TestEnvState_Apply(t *testing.T) {
	t.Parallel()

	state := NewEnvState()
	state.Apply(StateDelta{
		SystemPackages: []string{"git", "ffmpeg"},
		PythonPackages: []string{"pytest"},
		Paths:          []string{"/workspace/toolkit"},
		WorkDir:        "/workspace/toolkit",
	})

	assert.True(t, state.HasSystemPackage("git"))
	assert.True(t, state.HasSystemPackage("ffmpeg"))
	assert.True(t, state.HasPythonPackage("pytest"))
	assert.True(t, state.HasPath("/workspace/toolkit"))
	assert.Equal(t, "/workspace/toolkit", state.WorkDir())
}

func TestEnvState_ApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	delta := StateDelta{
		SystemPackages: []string{"git"},
		Paths:          []string{"/workspace"},
		WorkDir:        "/workspace",
	}

	state := NewEnvState()
	state.Apply(delta)
	first := state.Snapshot()

	state.Apply(delta)
	second := state.Snapshot()

	assert.Equal(t, first, second)
}

func TestEnvState_ApplyEmptyWorkDirKeepsPointer(t *testing.T) {
	t.Parallel()

	state := NewEnvState()
	state.Apply(StateDelta{WorkDir: "/workspace"})
	state.Apply(StateDelta{SystemPackages: []string{"git"}})

	assert.Equal(t, "/workspace", state.WorkDir())
}

func TestEnvState_Clone(t *testing.T) {
	t.Parallel()

	state := NewEnvState()
	state.Apply(StateDelta{
		SystemPackages: []string{"git"},
		PythonPackages: []string{"pytest"},
		WorkDir:        "/workspace",
	})

	clone := state.Clone()
	require.Equal(t, state.Snapshot(), clone.Snapshot())

	// Mutating the clone must not leak into the original.
	clone.Apply(StateDelta{SystemPackages: []string{"ffmpeg"}, WorkDir: "/other"})
	assert.False(t, state.HasSystemPackage("ffmpeg"))
	assert.Equal(t, "/workspace", state.WorkDir())
}

func TestEnvState_SnapshotSorted(t *testing.T) {
	t.Parallel()

	state := NewEnvState()
	state.Apply(StateDelta{
		SystemPackages: []string{"libxext6", "ffmpeg", "git", "libsm6"},
	})

	snap := state.Snapshot()
	assert.Equal(t, []string{"ffmpeg", "git", "libsm6", "libxext6"}, snap.SystemPackages)
}

func TestStateDelta_IsZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		delta    StateDelta
		expected bool
	}{
		{"empty", StateDelta{}, true},
		{"system packages", StateDelta{SystemPackages: []string{"git"}}, false},
		{"python packages", StateDelta{PythonPackages: []string{"pytest"}}, false},
		{"paths", StateDelta{Paths: []string{"/workspace"}}, false},
		{"workdir", StateDelta{WorkDir: "/workspace"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.delta.IsZero())
		})
	}
}
