// Package pipeline provides the stage sequencer for envgate.
//
// This file defines the executor contract and the registry that maps stage
// types to executors. Executors perform the external work of a stage and
// report its raw output; they never mutate the environment state. Applying
// a stage's declared delta is the sequencer's job alone.
//
// Import rules:
//   - CAN import: internal/constants, internal/domain, internal/errors, the
//     capability packages (syspkg, pypkg, git, workspace, verify), std lib
//   - MUST NOT import: internal/cli, internal/config
package pipeline

import (
	"context"
	"fmt"

	"github.com/envgate/envgate/internal/domain"
	envgateerrors "github.com/envgate/envgate/internal/errors"
)

// Executor performs the external work of one stage type.
type Executor interface {
	// Execute runs the stage's command against the current environment
	// state. The state is read-only from the executor's perspective.
	// Returns the external tool's captured output, if any, and an error
	// carrying the tool's raw failure detail and exit code on failure.
	Execute(ctx context.Context, state *domain.EnvState, stage *domain.Stage) (output string, err error)
}

// ExecutorRegistry maps stage types to their executors.
// The registry is populated once at startup and read-only afterwards.
type ExecutorRegistry struct {
	executors map[domain.StageType]Executor
}

// NewExecutorRegistry creates an empty registry.
func NewExecutorRegistry() *ExecutorRegistry {
	return &ExecutorRegistry{
		executors: make(map[domain.StageType]Executor),
	}
}

// Register adds an executor for a stage type, replacing any previous one.
func (r *ExecutorRegistry) Register(t domain.StageType, e Executor) {
	r.executors[t] = e
}

// Get returns the executor for a stage type.
// Returns ErrExecutorNotFound if no executor is registered.
func (r *ExecutorRegistry) Get(t domain.StageType) (Executor, error) {
	e, ok := r.executors[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", envgateerrors.ErrExecutorNotFound, t)
	}
	return e, nil
}
