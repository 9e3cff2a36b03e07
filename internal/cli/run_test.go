package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envgate/envgate/internal/constants"
	"github.com/envgate/envgate/internal/domain"
)

func TestRunCmd_ManifestMissingFailsBeforeProvisioning(t *testing.T) {
	// A bad manifest must stop the run before any tool is invoked.
	_, err := executeCommand(t, "run", "--manifest", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRenderResultText_Success(t *testing.T) {
	t.Parallel()

	result := &domain.PipelineResult{
		RunID:  "run-abc",
		Status: constants.PipelineStatusSucceeded,
		Stages: []domain.StageResult{
			{StageID: "system-packages", Status: constants.StageStatusCompleted, DurationMs: 1500},
			{StageID: "verify", Status: constants.StageStatusCompleted, DurationMs: 30},
		},
		FinalState: domain.EnvSnapshot{WorkDir: "/workspace/deep-image-matching"},
	}

	var buf bytes.Buffer
	renderResultText(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "run-abc")
	assert.Contains(t, out, "system-packages")
	assert.Contains(t, out, "Environment provisioned and verified")
	assert.Contains(t, out, "/workspace/deep-image-matching")
}

func TestRenderResultText_Failure(t *testing.T) {
	t.Parallel()

	result := &domain.PipelineResult{
		RunID:  "run-def",
		Status: constants.PipelineStatusFailed,
		Stages: []domain.StageResult{
			{StageID: "system-packages", Status: constants.StageStatusCompleted},
			{StageID: "python-packages", Status: constants.StageStatusFailed, Error: "pip install failed", ExitCode: 1},
		},
		FailedStage:    "python-packages",
		FailedPosition: 2,
		ExitCode:       1,
	}

	var buf bytes.Buffer
	renderResultText(&buf, result)
	out := buf.String()

	assert.Contains(t, out, `failed at stage "python-packages" (position 2), exit code 1`)
	assert.Contains(t, out, "pip install failed")
	assert.NotContains(t, out, "provisioned and verified")
}

func TestRenderResultText_NilResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderResultText(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ms       int64
		expected string
	}{
		{0, "0ms"},
		{430, "430ms"},
		{1500, "1.5s"},
		{61000, "1m1s"},
		{int64(2 * time.Minute / time.Millisecond), "2m"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, formatDuration(tc.ms))
		})
	}
}
