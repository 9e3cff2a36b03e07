// Package workspace provides working-directory selection for envgate.
//
// Selecting a workspace is a pure state mutation: the persistent
// working-directory pointer lives in the environment state and is moved by
// the pipeline sequencer. This package contributes only the validation that
// the target exists and is a directory, which is the post-condition the
// source fetcher stage must have established.
package workspace

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	envgateerrors "github.com/envgate/envgate/internal/errors"
)

// Selector validates workspace paths before the sequencer moves the
// working-directory pointer.
type Selector struct {
	logger zerolog.Logger
}

// NewSelector creates a Selector.
func NewSelector(logger zerolog.Logger) *Selector {
	return &Selector{logger: logger}
}

// Validate checks that path exists and is a directory.
// Returns ErrWorkdirNotFound if the path is missing and ErrNotADirectory
// if it exists but is a regular file.
func (s *Selector) Validate(path string) error {
	if path == "" {
		return fmt.Errorf("%w: workspace path", envgateerrors.ErrEmptyValue)
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", envgateerrors.ErrWorkdirNotFound, path)
	}
	if err != nil {
		return envgateerrors.Wrapf(err, "failed to stat workspace %s", path)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", envgateerrors.ErrNotADirectory, path)
	}

	s.logger.Debug().Str("workspace", path).Msg("workspace selected")
	return nil
}
