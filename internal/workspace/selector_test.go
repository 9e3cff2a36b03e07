package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envgateerrors "github.com/envgate/envgate/internal/errors"
)

func TestSelector_Validate(t *testing.T) {
	t.Parallel()

	selector := NewSelector(zerolog.Nop())
	assert.NoError(t, selector.Validate(t.TempDir()))
}

func TestSelector_Validate_EmptyPath(t *testing.T) {
	t.Parallel()

	selector := NewSelector(zerolog.Nop())
	err := selector.Validate("")
	require.Error(t, err)
	assert.ErrorIs(t, err, envgateerrors.ErrEmptyValue)
}

func TestSelector_Validate_Missing(t *testing.T) {
	t.Parallel()

	selector := NewSelector(zerolog.Nop())

	// A workspace selection before the checkout exists must fail, the
	// pointer never moves to a path that is not there yet.
	missing := filepath.Join(t.TempDir(), "never-cloned")
	err := selector.Validate(missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, envgateerrors.ErrWorkdirNotFound)
	assert.Contains(t, err.Error(), missing)
}

func TestSelector_Validate_File(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o600))

	selector := NewSelector(zerolog.Nop())
	err := selector.Validate(file)
	require.Error(t, err)
	assert.ErrorIs(t, err, envgateerrors.ErrNotADirectory)
}
