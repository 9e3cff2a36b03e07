// Package syspkg provides OS package manager operations for envgate.
//
// The package wraps the apt-get CLI behind the Manager interface so the
// pipeline sequencer can be tested against fakes. Both operations delegate
// idempotency to apt itself: refreshing an up-to-date index and installing
// an already-satisfied package set are no-op successes, not errors.
package syspkg

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/envgate/envgate/internal/command"
	"github.com/envgate/envgate/internal/constants"
	envgateerrors "github.com/envgate/envgate/internal/errors"
)

// Manager defines operations on the OS package manager.
// Context controls cancellation; there is no internal timeout.
type Manager interface {
	// Refresh updates the OS package index. Fails if the package mirrors
	// are unreachable.
	Refresh(ctx context.Context) error

	// Install installs the named packages non-interactively. Re-running
	// against an already-satisfied package set succeeds without error.
	Install(ctx context.Context, packages []string) error
}

// AptManager implements Manager using the apt-get CLI.
type AptManager struct {
	runner command.Runner
	env    []string
	logger zerolog.Logger
}

// NewAptManager creates an AptManager. nonInteractiveEnv is the KEY=value
// assignment that disables package manager prompts (normally
// DEBIAN_FRONTEND=noninteractive); an empty value falls back to the default.
func NewAptManager(runner command.Runner, nonInteractiveEnv string, logger zerolog.Logger) *AptManager {
	if nonInteractiveEnv == "" {
		nonInteractiveEnv = constants.DefaultNonInteractiveEnv
	}
	return &AptManager{
		runner: runner,
		env:    []string{nonInteractiveEnv},
		logger: logger,
	}
}

// Refresh runs "apt-get update".
func (m *AptManager) Refresh(ctx context.Context) error {
	m.logger.Info().Msg("refreshing package index")

	res, err := m.runner.Run(ctx, "", constants.ToolAptGet, []string{"update"}, m.env)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return envgateerrors.WithExitCode(res.ExitCode, wrapToolFailure("apt-get update", res, envgateerrors.ErrIndexRefresh))
	}
	return nil
}

// Install runs "apt-get install -y" with the given package names.
// No partial or selective install is attempted; the whole set either
// installs or the call fails.
func (m *AptManager) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return fmt.Errorf("%w: package list", envgateerrors.ErrEmptyValue)
	}

	m.logger.Info().Strs("packages", packages).Msg("installing system packages")

	args := append([]string{"install", "-y"}, packages...)
	res, err := m.runner.Run(ctx, "", constants.ToolAptGet, args, m.env)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return envgateerrors.WithExitCode(res.ExitCode, wrapToolFailure("apt-get install", res, envgateerrors.ErrSystemInstall))
	}
	return nil
}

// wrapToolFailure wraps a sentinel with the raw stderr detail of the failed
// tool invocation, preserving the underlying failure unmodified.
func wrapToolFailure(what string, res *command.Result, sentinel error) error {
	detail := strings.TrimSpace(res.Stderr)
	if detail == "" {
		detail = strings.TrimSpace(res.Stdout)
	}
	if detail != "" {
		return fmt.Errorf("%s failed: %s: %w", what, detail, sentinel)
	}
	return fmt.Errorf("%s failed: %w", what, sentinel)
}

// Ensure AptManager implements Manager.
var _ Manager = (*AptManager)(nil)
