package constants

// StageStatus represents the state of a single pipeline stage.
// Status values use snake_case for JSON serialization compatibility.
type StageStatus string

// Stage status constants define the valid states a stage can be in.
// A stage moves Pending → Running → Completed or Failed; there are no
// retries and no other transitions.
const (
	// StageStatusPending indicates a stage is defined but not yet started.
	StageStatusPending StageStatus = "pending"

	// StageStatusRunning indicates the stage's external command is executing.
	StageStatusRunning StageStatus = "running"

	// StageStatusCompleted indicates the stage finished successfully and its
	// declared state delta has been applied.
	StageStatusCompleted StageStatus = "completed"

	// StageStatusFailed indicates the stage's command reported failure.
	// All subsequent stages are left pending.
	StageStatusFailed StageStatus = "failed"
)

// String returns the string representation of the StageStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s StageStatus) String() string {
	return string(s)
}

// PipelineStatus represents the terminal outcome of a whole pipeline run.
type PipelineStatus string

// Pipeline status constants define the valid terminal outcomes.
const (
	// PipelineStatusSucceeded indicates every stage, including the
	// verification gate, completed with a zero exit status.
	PipelineStatusSucceeded PipelineStatus = "succeeded"

	// PipelineStatusFailed indicates the pipeline halted at its first
	// failing stage. The environment is left partially built.
	PipelineStatusFailed PipelineStatus = "failed"
)

// String returns the string representation of the PipelineStatus.
func (s PipelineStatus) String() string {
	return string(s)
}
