package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrIndexRefresh,
		ErrSystemInstall,
		ErrPythonInstall,
		ErrGitOperation,
		ErrCloneConflict,
		ErrWorkdirNotFound,
		ErrNotADirectory,
		ErrVerificationFailed,
		ErrCommandFailed,
		ErrExecutorNotFound,
		ErrPipelineEmpty,
		ErrStateNil,
		ErrConfigNil,
		ErrConfigInvalid,
		ErrEmptyValue,
		ErrInvalidOutputFormat,
		ErrManifestNotFound,
		ErrManifestParse,
		ErrManifestInvalid,
		ErrMissingRequiredTools,
	}

	seen := make(map[string]bool)
	for _, err := range sentinels {
		require.Error(t, err)
		assert.False(t, seen[err.Error()], "duplicate sentinel message: %s", err.Error())
		seen[err.Error()] = true
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("preserves error chain", func(t *testing.T) {
		t.Parallel()
		wrapped := Wrap(ErrSystemInstall, "installing packages")
		require.Error(t, wrapped)
		assert.ErrorIs(t, wrapped, ErrSystemInstall)
		assert.Contains(t, wrapped.Error(), "installing packages")
	})
}

func TestWrapf(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Wrapf(nil, "stage %s failed", "verify"))
	})

	t.Run("formats context and preserves chain", func(t *testing.T) {
		t.Parallel()
		wrapped := Wrapf(ErrVerificationFailed, "stage %s (position %d) failed", "verify", 5)
		require.Error(t, wrapped)
		assert.ErrorIs(t, wrapped, ErrVerificationFailed)
		assert.Contains(t, wrapped.Error(), "stage verify (position 5) failed")
	})
}

func TestWithExitCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, WithExitCode(2, nil))
	})

	t.Run("carries code and unwraps", func(t *testing.T) {
		t.Parallel()
		err := WithExitCode(128, ErrGitOperation)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGitOperation)
		assert.Equal(t, ErrGitOperation.Error(), err.Error())
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"plain error", stderrors.New("boom"), 1},
		{"sentinel without code", ErrVerificationFailed, 1},
		{"direct exit code error", WithExitCode(100, ErrSystemInstall), 100},
		{"code survives wrapping", Wrap(WithExitCode(5, ErrVerificationFailed), "stage verify failed"), 5},
		{
			"code survives double wrapping",
			fmt.Errorf("outer: %w", Wrapf(WithExitCode(137, ErrPythonInstall), "pip install %s failed", "pkg")),
			137,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ExitCode(tc.err))
		})
	}
}

func TestExitCode_InnermostCodeWins(t *testing.T) {
	t.Parallel()

	// errors.As finds the outermost ExitCodeError; re-wrapping with a new
	// code replaces what the process would exit with.
	inner := WithExitCode(2, ErrVerificationFailed)
	outer := WithExitCode(7, inner)
	assert.Equal(t, 7, ExitCode(outer))
}
