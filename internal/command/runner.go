// Package command provides external process execution for the provisioning
// pipeline.
//
// Every external collaborator the pipeline invokes - the OS package manager,
// the Python package installer, the version-control client, the toolkit's
// test runner - is reached through the Runner interface defined here, so the
// capability packages (syspkg, pypkg, git, verify) can be tested against fake
// runners without touching real package managers or the network.
//
// SECURITY NOTE: The commands executed by this package come from the built-in
// pipeline plan and from envgate configuration files. These are treated as
// trusted input, the same trust model as a Dockerfile or a Makefile: anyone
// who can edit the provisioning definition already controls what ends up in
// the image. Commands are executed directly (argv form), never through a
// shell, so no shell interpolation of configured values takes place.
package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Result holds the captured outcome of a single external command.
type Result struct {
	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// ExitCode is the process exit status. Zero on success.
	ExitCode int
}

// Runner defines the interface for executing external commands.
// This allows for testing by injecting fake implementations.
type Runner interface {
	// Run executes a command and returns its captured output. workDir may be
	// empty to run in the current directory. extraEnv entries (KEY=value) are
	// appended to the inherited environment.
	Run(ctx context.Context, workDir, name string, args, extraEnv []string) (*Result, error)
}

// LiveOutputRunner defines a runner that supports live output streaming.
type LiveOutputRunner interface {
	Runner
	// RunWithLiveOutput executes a command and streams combined output to
	// liveOut while also capturing it.
	RunWithLiveOutput(ctx context.Context, workDir, name string, args, extraEnv []string, liveOut io.Writer) (*Result, error)
}

// DefaultRunner implements Runner and LiveOutputRunner using os/exec.
type DefaultRunner struct{}

// Run executes a command and captures its output.
func (r *DefaultRunner) Run(ctx context.Context, workDir, name string, args, extraEnv []string) (*Result, error) {
	return r.runCommand(ctx, workDir, name, args, extraEnv, nil)
}

// RunWithLiveOutput executes a command and streams output to liveOut while
// also capturing it.
func (r *DefaultRunner) RunWithLiveOutput(ctx context.Context, workDir, name string, args, extraEnv []string, liveOut io.Writer) (*Result, error) {
	return r.runCommand(ctx, workDir, name, args, extraEnv, liveOut)
}

// runCommand executes a command with optional live output streaming.
func (r *DefaultRunner) runCommand(ctx context.Context, workDir, name string, args, extraEnv []string, liveOut io.Writer) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...) //#nosec G204 -- argv comes from the pipeline definition, trusted input
	cmd.Dir = workDir
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var outBuf, errBuf bytes.Buffer
	if liveOut != nil {
		cmd.Stdout = io.MultiWriter(&outBuf, liveOut)
		cmd.Stderr = io.MultiWriter(&errBuf, liveOut)
	} else {
		cmd.Stdout = &outBuf
		cmd.Stderr = &errBuf
	}

	err := cmd.Run()
	result := &Result{
		Stdout: outBuf.String(),
		Stderr: errBuf.String(),
	}

	if err != nil {
		// Check for context cancellation first; an aborted build must
		// surface as cancellation, not as a tool failure.
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
		}
		return result, err
	}

	return result, nil
}

// Ensure DefaultRunner implements Runner and LiveOutputRunner.
var (
	_ Runner           = (*DefaultRunner)(nil)
	_ LiveOutputRunner = (*DefaultRunner)(nil)
)
