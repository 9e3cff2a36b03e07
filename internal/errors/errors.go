// Package errors provides centralized error handling for envgate.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrIndexRefresh indicates the OS package index could not be refreshed,
	// typically because the package mirrors were unreachable.
	ErrIndexRefresh = errors.New("package index refresh failed")

	// ErrSystemInstall indicates one or more named OS packages could not be
	// resolved or installed.
	ErrSystemInstall = errors.New("system package install failed")

	// ErrPythonInstall indicates a Python package could not be fetched,
	// built, or installed into the active runtime.
	ErrPythonInstall = errors.New("python package install failed")

	// ErrGitOperation indicates that a git command failed during execution.
	ErrGitOperation = errors.New("git operation failed")

	// ErrCloneConflict indicates the clone target path already exists with
	// conflicting content.
	ErrCloneConflict = errors.New("clone target conflicts with existing content")

	// ErrWorkdirNotFound indicates the workspace selector targeted a path
	// that does not exist.
	ErrWorkdirNotFound = errors.New("working directory not found")

	// ErrNotADirectory indicates the workspace selector targeted a path
	// that exists but is not a directory.
	ErrNotADirectory = errors.New("path is not a directory")

	// ErrVerificationFailed indicates the toolkit's own test suite reported
	// failures or crashed. The built environment must not be used.
	ErrVerificationFailed = errors.New("verification tests failed")

	// ErrCommandFailed indicates that an external command execution failed.
	ErrCommandFailed = errors.New("command failed")

	// ErrExecutorNotFound indicates no executor is registered for a stage type.
	ErrExecutorNotFound = errors.New("executor not found for stage type")

	// ErrPipelineEmpty indicates a pipeline run was requested with no stages.
	ErrPipelineEmpty = errors.New("pipeline has no stages")

	// ErrStateNil indicates a nil environment state was passed to the sequencer.
	ErrStateNil = errors.New("environment state is nil")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrManifestNotFound indicates the manifest file does not exist.
	ErrManifestNotFound = errors.New("manifest file not found")

	// ErrManifestParse indicates the manifest file has invalid YAML syntax
	// or unknown fields.
	ErrManifestParse = errors.New("manifest parse error")

	// ErrManifestInvalid indicates a manifest failed validation.
	ErrManifestInvalid = errors.New("invalid manifest")

	// ErrMissingRequiredTools indicates required external tools are not
	// available in PATH. Reported before the first stage runs.
	ErrMissingRequiredTools = errors.New("required tools are missing")
)
