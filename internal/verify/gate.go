// Package verify implements the verification gate for envgate.
//
// The gate runs the cloned toolkit's own test command inside the selected
// workspace and treats its exit status, unmodified, as the sole correctness
// signal for the whole built environment. A non-zero exit, crash, or
// cancellation means the environment must not be published as usable.
package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/envgate/envgate/internal/command"
	envgateerrors "github.com/envgate/envgate/internal/errors"
)

// Result captures the test runner's outcome.
type Result struct {
	// ExitCode is the test runner's own exit status, passed through
	// unmodified.
	ExitCode int

	// Output is the combined captured output of the test run.
	Output string
}

// Runner defines the verification capability.
type Runner interface {
	// RunTests executes the test command in workDir and returns its result.
	// The error is non-nil whenever ExitCode is non-zero.
	RunTests(ctx context.Context, workDir string) (*Result, error)
}

// CommandGate implements Runner by invoking a configured test command
// (normally just "pytest" with no arguments, letting the runner discover
// the toolkit's suite from the working directory).
type CommandGate struct {
	cmd    []string
	runner command.Runner
	logger zerolog.Logger
}

// NewCommandGate creates a CommandGate for the given test command.
// cmd[0] is the executable, the rest are arguments.
func NewCommandGate(cmd []string, runner command.Runner, logger zerolog.Logger) *CommandGate {
	return &CommandGate{cmd: cmd, runner: runner, logger: logger}
}

// RunTests runs the test command in workDir.
func (g *CommandGate) RunTests(ctx context.Context, workDir string) (*Result, error) {
	if len(g.cmd) == 0 {
		return nil, fmt.Errorf("%w: test command", envgateerrors.ErrEmptyValue)
	}
	if workDir == "" {
		return nil, fmt.Errorf("%w: working directory", envgateerrors.ErrEmptyValue)
	}

	g.logger.Info().
		Strs("command", g.cmd).
		Str("work_dir", workDir).
		Msg("running verification tests")

	res, err := g.runner.Run(ctx, workDir, g.cmd[0], g.cmd[1:], nil)
	result := &Result{ExitCode: res.ExitCode, Output: combineOutput(res)}

	if err != nil {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		g.logger.Error().Int("exit_code", res.ExitCode).Msg("verification tests failed")
		return result, envgateerrors.WithExitCode(res.ExitCode,
			fmt.Errorf("%s exited with code %d: %w", g.cmd[0], res.ExitCode, envgateerrors.ErrVerificationFailed))
	}

	g.logger.Info().Msg("verification tests passed")
	return result, nil
}

func combineOutput(res *command.Result) string {
	out := strings.TrimSpace(res.Stdout)
	errOut := strings.TrimSpace(res.Stderr)
	switch {
	case out == "":
		return errOut
	case errOut == "":
		return out
	default:
		return out + "\n" + errOut
	}
}

// Ensure CommandGate implements Runner.
var _ Runner = (*CommandGate)(nil)
