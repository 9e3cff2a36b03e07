// Package config provides configuration management for envgate.
// This file implements the preflight check for external tool availability.
//
// The pipeline's stages shell out to apt-get, pip, git, and the configured
// test runner. A missing tool would otherwise surface mid-pipeline as a
// confusing stage failure; checking up front turns it into a clear error
// before stage 1 runs.
package config

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/envgate/envgate/internal/constants"
	envgateerrors "github.com/envgate/envgate/internal/errors"
)

// ToolLookup abstracts executable lookup for testability.
type ToolLookup interface {
	// LookPath searches for an executable named file in the PATH.
	LookPath(file string) (string, error)
}

// DefaultToolLookup implements ToolLookup using os/exec.
type DefaultToolLookup struct{}

// LookPath searches for an executable in the PATH.
func (l *DefaultToolLookup) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RequiredTools returns the executables the configured pipeline will invoke.
func RequiredTools(cfg *Config) []string {
	tools := []string{constants.ToolAptGet, constants.ToolPip, constants.ToolGit}
	if len(cfg.Verify.Command) > 0 {
		tools = append(tools, cfg.Verify.Command[0])
	}
	return tools
}

// Preflight checks that every required tool is available in PATH. The
// lookups are independent and run concurrently; the pipeline itself remains
// strictly sequential. Returns ErrMissingRequiredTools naming every absent
// tool, or nil if all are present.
func Preflight(ctx context.Context, lookup ToolLookup, tools []string) error {
	preflightCtx, cancel := context.WithTimeout(ctx, constants.PreflightTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		missing []string
	)

	g, gCtx := errgroup.WithContext(preflightCtx)
	for _, tool := range tools {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if _, err := lookup.LookPath(tool); err != nil {
				mu.Lock()
				missing = append(missing, tool)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return envgateerrors.Wrap(err, "preflight check interrupted")
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", envgateerrors.ErrMissingRequiredTools, strings.Join(missing, ", "))
	}
	return nil
}
