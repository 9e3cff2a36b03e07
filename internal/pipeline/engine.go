// Package pipeline provides the stage sequencer for envgate.
//
// This file implements the Engine, which executes a fixed, ordered list of
// stages against a single shared environment state with strict fail-fast
// semantics. The engine is the only component permitted to mutate the
// environment state: on stage success it applies the stage's declared delta,
// on failure it halts immediately, leaving the environment in its
// partially-built state, matching the semantics of an aborted image build.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/envgate/envgate/internal/constants"
	"github.com/envgate/envgate/internal/domain"
	envgateerrors "github.com/envgate/envgate/internal/errors"
)

// Engine executes pipelines. Stages run strictly sequentially in
// declaration order; there is no reordering, no speculative execution, and
// no retry. Cancellation via ctx aborts the in-flight stage and halts the
// run; there is no mid-pipeline resume.
type Engine struct {
	registry *ExecutorRegistry
	logger   zerolog.Logger
}

// NewEngine creates an Engine backed by the given executor registry.
func NewEngine(registry *ExecutorRegistry, logger zerolog.Logger) *Engine {
	return &Engine{registry: registry, logger: logger}
}

// GenerateRunID returns a unique pipeline run identifier.
// Format: run-<uuid>.
func GenerateRunID() string {
	return "run-" + uuid.NewString()
}

// Run executes the ordered stage list against the given environment state.
//
// The result is a pure function of the stage list applied to the initial
// state: repeated runs against an identical base state produce an identical
// final state. On the first failure the result names the failing stage, its
// 1-based position, and the underlying tool's exit code; no subsequent stage
// runs and no rollback is attempted. The PipelineResult is always returned,
// alongside the failing stage's error (nil on full success).
func (e *Engine) Run(ctx context.Context, stages []domain.Stage, state *domain.EnvState) (*domain.PipelineResult, error) {
	if len(stages) == 0 {
		return nil, envgateerrors.ErrPipelineEmpty
	}
	if state == nil {
		return nil, envgateerrors.ErrStateNil
	}

	result := &domain.PipelineResult{
		RunID:         GenerateRunID(),
		Status:        constants.PipelineStatusSucceeded,
		Stages:        make([]domain.StageResult, 0, len(stages)),
		StartedAt:     time.Now().UTC(),
		SchemaVersion: constants.ResultSchemaVersion,
	}

	e.logger.Info().
		Str("run_id", result.RunID).
		Int("stage_count", len(stages)).
		Msg("starting pipeline run")

	for i := range stages {
		stage := &stages[i]

		stageResult, err := e.executeStage(ctx, state, stage)
		result.Stages = append(result.Stages, *stageResult)

		if err != nil {
			result.Status = constants.PipelineStatusFailed
			result.FailedStage = stage.ID
			result.FailedPosition = i + 1
			result.ExitCode = stageResult.ExitCode
			result.CompletedAt = time.Now().UTC()
			result.FinalState = state.Snapshot()

			e.logger.Error().
				Str("run_id", result.RunID).
				Str("stage_id", stage.ID).
				Int("position", i+1).
				Int("exit_code", stageResult.ExitCode).
				Msg("pipeline halted at failing stage")

			return result, envgateerrors.Wrapf(err, "stage %s (position %d) failed", stage.ID, i+1)
		}

		// Only the engine mutates the shared state, and only with the
		// stage's declared delta.
		state.Apply(stage.Delta)
	}

	result.CompletedAt = time.Now().UTC()
	result.FinalState = state.Snapshot()

	e.logger.Info().
		Str("run_id", result.RunID).
		Int("stage_count", len(result.Stages)).
		Msg("pipeline run completed")

	return result, nil
}

// executeStage runs a single stage and records its result.
func (e *Engine) executeStage(ctx context.Context, state *domain.EnvState, stage *domain.Stage) (*domain.StageResult, error) {
	stageResult := &domain.StageResult{
		StageID:   stage.ID,
		Status:    constants.StageStatusRunning,
		StartedAt: time.Now().UTC(),
	}

	if err := ctx.Err(); err != nil {
		return e.finishStage(stageResult, "", err), err
	}

	executor, err := e.registry.Get(stage.Type)
	if err != nil {
		return e.finishStage(stageResult, "", err), err
	}

	e.logger.Info().
		Str("stage_id", stage.ID).
		Str("stage_type", string(stage.Type)).
		Msg("executing stage")

	start := time.Now()
	output, err := executor.Execute(ctx, state, stage)
	duration := time.Since(start)

	if err != nil {
		e.logger.Error().
			Str("stage_id", stage.ID).
			Int64("duration_ms", duration.Milliseconds()).
			Err(err).
			Msg("stage execution failed")
		return e.finishStage(stageResult, output, err), err
	}

	e.logger.Info().
		Str("stage_id", stage.ID).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("stage completed")

	return e.finishStage(stageResult, output, nil), nil
}

// finishStage stamps the terminal status, timing, and failure detail.
func (e *Engine) finishStage(sr *domain.StageResult, output string, err error) *domain.StageResult {
	sr.CompletedAt = time.Now().UTC()
	sr.DurationMs = sr.CompletedAt.Sub(sr.StartedAt).Milliseconds()
	sr.Output = output

	if err != nil {
		sr.Status = constants.StageStatusFailed
		sr.Error = err.Error()
		sr.ExitCode = envgateerrors.ExitCode(err)
		return sr
	}

	sr.Status = constants.StageStatusCompleted
	return sr
}
