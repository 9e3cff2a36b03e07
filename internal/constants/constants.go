// Package constants provides centralized constant values used throughout envgate.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by envgate for organizing data.
const (
	// EnvgateHome is the hidden directory name where envgate stores all its data.
	// This directory is created in the user's home directory.
	EnvgateHome = ".envgate"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "envgate.log"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size of a log file before rotation, in megabytes.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of a rotated log file, in days.
	LogMaxAgeDays = 30

	// LogCompress controls whether rotated log files are gzip compressed.
	LogCompress = true
)

// External tools invoked by the provisioning pipeline.
const (
	// ToolAptGet is the OS package manager executable.
	ToolAptGet = "apt-get"

	// ToolPip is the Python package installer executable.
	ToolPip = "pip"

	// ToolGit is the version-control client executable.
	ToolGit = "git"
)

// DefaultNonInteractiveEnv is the environment assignment that disables
// package manager prompts during installs. It is the only externally
// observable configuration knob of the OS package manager interface.
const DefaultNonInteractiveEnv = "DEBIAN_FRONTEND=noninteractive"

// PreflightTimeout bounds the tool-availability check that runs before
// the first pipeline stage.
const PreflightTimeout = 10 * time.Second

// ResultSchemaVersion is the current version of the pipeline result JSON schema.
// This enables forward-compatible schema migrations.
const ResultSchemaVersion = 1
