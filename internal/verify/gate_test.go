package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envgate/envgate/internal/command"
	envgateerrors "github.com/envgate/envgate/internal/errors"
)

// recordedCall captures one invocation of the fake runner.
type recordedCall struct {
	workDir string
	name    string
	args    []string
}

// fakeRunner records invocations and replays a scripted result.
type fakeRunner struct {
	calls  []recordedCall
	result *command.Result
	err    error
}

func (f *fakeRunner) Run(_ context.Context, workDir, name string, args, _ []string) (*command.Result, error) {
	f.calls = append(f.calls, recordedCall{workDir: workDir, name: name, args: args})
	res := f.result
	if res == nil {
		res = &command.Result{}
	}
	return res, f.err
}

func TestCommandGate_RunTests_Pass(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{result: &command.Result{Stdout: "34 passed in 12.1s"}}
	gate := NewCommandGate([]string{"pytest"}, runner, zerolog.Nop())

	res, err := gate.RunTests(context.Background(), "/workspace/deep-image-matching")
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "34 passed in 12.1s", res.Output)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "/workspace/deep-image-matching", runner.calls[0].workDir)
	assert.Equal(t, "pytest", runner.calls[0].name)
	assert.Empty(t, runner.calls[0].args)
}

func TestCommandGate_RunTests_CommandWithArgs(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{result: &command.Result{}}
	gate := NewCommandGate([]string{"pytest", "-x", "tests/"}, runner, zerolog.Nop())

	_, err := gate.RunTests(context.Background(), "/workspace/toolkit")
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"-x", "tests/"}, runner.calls[0].args)
}

func TestCommandGate_RunTests_FailurePropagatesExitCode(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{
		result: &command.Result{Stdout: "2 failed, 30 passed", ExitCode: 1},
		err:    errors.New("exit status 1"),
	}
	gate := NewCommandGate([]string{"pytest"}, runner, zerolog.Nop())

	res, err := gate.RunTests(context.Background(), "/workspace/toolkit")
	require.Error(t, err)
	require.NotNil(t, res)

	// pytest's own exit code passes through unmodified.
	assert.Equal(t, 1, res.ExitCode)
	assert.ErrorIs(t, err, envgateerrors.ErrVerificationFailed)
	assert.Equal(t, 1, envgateerrors.ExitCode(err))
	assert.Contains(t, res.Output, "2 failed")
}

func TestCommandGate_RunTests_CrashExitCode(t *testing.T) {
	t.Parallel()

	// pytest reserves exit code 3 for internal errors; a crashed runner is
	// still a failed verification.
	runner := &fakeRunner{
		result: &command.Result{Stderr: "INTERNALERROR> OSError", ExitCode: 3},
		err:    errors.New("exit status 3"),
	}
	gate := NewCommandGate([]string{"pytest"}, runner, zerolog.Nop())

	res, err := gate.RunTests(context.Background(), "/workspace/toolkit")
	require.Error(t, err)
	assert.Equal(t, 3, envgateerrors.ExitCode(err))
	assert.Contains(t, res.Output, "INTERNALERROR")
}

func TestCommandGate_RunTests_CombinesOutput(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{result: &command.Result{Stdout: "collected 12 items", Stderr: "warning: deprecated fixture"}}
	gate := NewCommandGate([]string{"pytest"}, runner, zerolog.Nop())

	res, err := gate.RunTests(context.Background(), "/workspace/toolkit")
	require.NoError(t, err)
	assert.Equal(t, "collected 12 items\nwarning: deprecated fixture", res.Output)
}

func TestCommandGate_RunTests_EmptyInputs(t *testing.T) {
	t.Parallel()

	gate := NewCommandGate(nil, &fakeRunner{}, zerolog.Nop())
	_, err := gate.RunTests(context.Background(), "/workspace")
	assert.ErrorIs(t, err, envgateerrors.ErrEmptyValue)

	gate = NewCommandGate([]string{"pytest"}, &fakeRunner{}, zerolog.Nop())
	_, err = gate.RunTests(context.Background(), "")
	assert.ErrorIs(t, err, envgateerrors.ErrEmptyValue)
}

func TestCommandGate_RunTests_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &fakeRunner{result: &command.Result{}, err: context.Canceled}
	gate := NewCommandGate([]string{"pytest"}, runner, zerolog.Nop())

	_, err := gate.RunTests(ctx, "/workspace/toolkit")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, envgateerrors.ErrVerificationFailed)
}
