// Package git provides version-control client operations for envgate.
// This file provides shared git command execution utilities.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/envgate/envgate/internal/command"
	envgateerrors "github.com/envgate/envgate/internal/errors"
	"github.com/envgate/envgate/internal/logging"
)

// RunCommand executes a git command through the given runner and returns its
// trimmed stdout. Failures are wrapped with ErrGitOperation, carry the tool's
// exit code, and include stderr (credentials redacted) for debugging.
func RunCommand(ctx context.Context, runner command.Runner, workDir string, args ...string) (string, error) {
	res, err := runner.Run(ctx, workDir, "git", args, nil)
	if err != nil {
		// Check for context cancellation
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if detail := strings.TrimSpace(res.Stderr); detail != "" {
			return "", envgateerrors.WithExitCode(res.ExitCode,
				fmt.Errorf("git %s failed: %s: %w", args[0], logging.FilterSensitiveValue(detail), envgateerrors.ErrGitOperation))
		}
		return "", envgateerrors.WithExitCode(res.ExitCode,
			fmt.Errorf("git %s failed: %w", args[0], envgateerrors.ErrGitOperation))
	}

	return strings.TrimSpace(res.Stdout), nil
}
