// Package pypkg provides Python package installer operations for envgate.
//
// The package wraps the pip CLI behind the Installer interface. Idempotency
// is delegated to pip's own "requirement already satisfied" semantics:
// re-installing against a satisfied runtime is a no-op success.
package pypkg

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/envgate/envgate/internal/command"
	"github.com/envgate/envgate/internal/constants"
	envgateerrors "github.com/envgate/envgate/internal/errors"
	"github.com/envgate/envgate/internal/logging"
)

// Installer defines operations on the Python package installer.
type Installer interface {
	// InstallFromVCS fetches a buildable source tree from a remote
	// source-control reference (e.g. git+https://...) and builds and
	// installs it.
	InstallFromVCS(ctx context.Context, ref string) error

	// InstallByName resolves the latest compatible version of a named
	// package from the public registry and installs it.
	InstallByName(ctx context.Context, name string) error
}

// PipInstaller implements Installer using the pip CLI.
type PipInstaller struct {
	runner command.Runner
	logger zerolog.Logger
}

// NewPipInstaller creates a PipInstaller backed by the given runner.
func NewPipInstaller(runner command.Runner, logger zerolog.Logger) *PipInstaller {
	return &PipInstaller{runner: runner, logger: logger}
}

// InstallFromVCS runs "pip install <ref>".
func (p *PipInstaller) InstallFromVCS(ctx context.Context, ref string) error {
	if ref == "" {
		return fmt.Errorf("%w: vcs reference", envgateerrors.ErrEmptyValue)
	}

	// Refs may carry embedded credentials; never log them verbatim.
	p.logger.Info().Str("ref", logging.RedactURL(ref)).Msg("installing python package from source")

	return p.install(ctx, ref)
}

// InstallByName runs "pip install <name>".
func (p *PipInstaller) InstallByName(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: package name", envgateerrors.ErrEmptyValue)
	}

	p.logger.Info().Str("package", name).Msg("installing python package from registry")

	return p.install(ctx, name)
}

func (p *PipInstaller) install(ctx context.Context, spec string) error {
	res, err := p.runner.Run(ctx, "", constants.ToolPip, []string{"install", spec}, nil)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		detail := strings.TrimSpace(res.Stderr)
		if detail != "" {
			return envgateerrors.WithExitCode(res.ExitCode,
				fmt.Errorf("pip install %s failed: %s: %w", logging.RedactURL(spec), logging.FilterSensitiveValue(detail), envgateerrors.ErrPythonInstall))
		}
		return envgateerrors.WithExitCode(res.ExitCode,
			fmt.Errorf("pip install %s failed: %w", logging.RedactURL(spec), envgateerrors.ErrPythonInstall))
	}
	return nil
}

// Ensure PipInstaller implements Installer.
var _ Installer = (*PipInstaller)(nil)
