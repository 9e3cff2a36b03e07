// Package git provides version-control client operations for envgate.
// This file implements the clone capability used by the source fetcher stage.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/envgate/envgate/internal/command"
	envgateerrors "github.com/envgate/envgate/internal/errors"
	"github.com/envgate/envgate/internal/logging"
)

// Cloner defines the clone operation of the version-control client.
// Context controls cancellation; an interrupted clone is a fatal failure,
// never retried.
type Cloner interface {
	// Clone fetches the repository at remoteURL into targetPath, producing
	// a complete working tree. Fails if the remote is unreachable or if
	// targetPath already exists with conflicting content.
	Clone(ctx context.Context, remoteURL, targetPath string) error
}

// CLIClient implements Cloner using the git CLI.
type CLIClient struct {
	runner command.Runner
	logger zerolog.Logger
}

// NewCLIClient creates a CLIClient backed by the given runner.
func NewCLIClient(runner command.Runner, logger zerolog.Logger) *CLIClient {
	return &CLIClient{runner: runner, logger: logger}
}

// Clone runs "git clone <remoteURL> <targetPath>".
//
// The target path must not pre-exist with content: git itself refuses to
// clone into a non-empty directory, but checking up front lets the failure
// carry a precise category (ErrCloneConflict) instead of a generic clone
// error. An existing empty directory is acceptable.
func (c *CLIClient) Clone(ctx context.Context, remoteURL, targetPath string) error {
	if remoteURL == "" {
		return fmt.Errorf("%w: remote url", envgateerrors.ErrEmptyValue)
	}
	if targetPath == "" {
		return fmt.Errorf("%w: target path", envgateerrors.ErrEmptyValue)
	}

	if err := checkCloneTarget(targetPath); err != nil {
		return err
	}

	// Ensure the parent directory exists; git creates only the final path
	// element itself.
	if err := os.MkdirAll(filepath.Dir(targetPath), 0o750); err != nil {
		return envgateerrors.Wrap(err, "failed to create clone parent directory")
	}

	c.logger.Info().
		Str("remote", logging.RedactURL(remoteURL)).
		Str("target", targetPath).
		Msg("cloning repository")

	_, err := RunCommand(ctx, c.runner, "", "clone", remoteURL, targetPath)
	return err
}

// checkCloneTarget verifies the target path is absent or an empty directory.
func checkCloneTarget(targetPath string) error {
	info, err := os.Stat(targetPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return envgateerrors.Wrapf(err, "failed to stat clone target %s", targetPath)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is a file", envgateerrors.ErrCloneConflict, targetPath)
	}

	entries, err := os.ReadDir(targetPath)
	if err != nil {
		return envgateerrors.Wrapf(err, "failed to read clone target %s", targetPath)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s is not empty", envgateerrors.ErrCloneConflict, targetPath)
	}

	return nil
}

// Ensure CLIClient implements Cloner.
var _ Cloner = (*CLIClient)(nil)
