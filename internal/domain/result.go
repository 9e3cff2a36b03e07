package domain

import (
	"time"

	"github.com/envgate/envgate/internal/constants"
)

// StageResult captures the outcome of executing a single stage.
//
// Example JSON representation:
//
//	{
//	    "stage_id": "fetch-source",
//	    "status": "failed",
//	    "exit_code": 128,
//	    "error": "git clone failed: could not resolve host",
//	    "started_at": "2026-08-31T10:00:00Z",
//	    "completed_at": "2026-08-31T10:00:04Z",
//	    "duration_ms": 4000
//	}
type StageResult struct {
	// StageID identifies which stage produced this result.
	StageID string `json:"stage_id"`

	// Status is the terminal status of the stage.
	Status constants.StageStatus `json:"status"`

	// Output contains the external tool's captured output, if any.
	Output string `json:"output,omitempty"`

	// Error contains the raw failure detail if the stage failed.
	Error string `json:"error,omitempty"`

	// ExitCode is the external tool's exit status. Zero on success.
	ExitCode int `json:"exit_code"`

	// StartedAt is when stage execution began.
	StartedAt time.Time `json:"started_at"`

	// CompletedAt is when stage execution finished.
	CompletedAt time.Time `json:"completed_at"`

	// DurationMs is the stage's wall-clock duration in milliseconds.
	DurationMs int64 `json:"duration_ms"`
}

// PipelineResult is the terminal outcome of a whole pipeline run: either
// "environment ready and verified" or "failed at stage N with reason".
// It is created at pipeline completion or at first failure and is immutable
// once produced.
type PipelineResult struct {
	// RunID uniquely identifies this pipeline run.
	// Format: run-<uuid>.
	RunID string `json:"run_id"`

	// Status is the terminal pipeline outcome.
	Status constants.PipelineStatus `json:"status"`

	// Stages holds one result per executed stage, in execution order.
	// Stages after the first failure never execute and have no result.
	Stages []StageResult `json:"stages"`

	// FailedStage names the failing stage's ID when Status is failed.
	FailedStage string `json:"failed_stage,omitempty"`

	// FailedPosition is the 1-based position of the failing stage.
	FailedPosition int `json:"failed_position,omitempty"`

	// ExitCode is the pipeline's exit contract value: zero only on full
	// success, otherwise the first failing stage's exit code.
	ExitCode int `json:"exit_code"`

	// StartedAt is when the pipeline run began.
	StartedAt time.Time `json:"started_at"`

	// CompletedAt is when the pipeline run finished or halted.
	CompletedAt time.Time `json:"completed_at"`

	// FinalState is a snapshot of the environment state when the run ended.
	// For failed runs this reflects the partially built environment.
	FinalState EnvSnapshot `json:"final_state"`

	// SchemaVersion indicates the version of the result schema.
	SchemaVersion int `json:"schema_version"`
}

// Succeeded reports whether every stage, including the verification gate,
// completed with a zero exit status.
func (r *PipelineResult) Succeeded() bool {
	return r.Status == constants.PipelineStatusSucceeded
}
