// Package cli provides the command-line interface for envgate.
package cli

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/envgate/envgate/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

// Output format constants.
const (
	// OutputText is the default human-readable output format.
	OutputText = "text"
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = "json"
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Output specifies the output format (text or json).
	Output string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputText, "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds global flags to Viper for configuration file and
// environment variable support. The ENVGATE_ prefix is used for environment
// variables (e.g., ENVGATE_OUTPUT, ENVGATE_VERBOSE).
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	// Use Root().PersistentFlags() to find flags defined on the root command,
	// even when called from a subcommand's PersistentPreRunE.
	rootFlags := cmd.Root().PersistentFlags()

	if err := v.BindPFlag("output", rootFlags.Lookup("output")); err != nil {
		return err
	}
	if err := v.BindPFlag("verbose", rootFlags.Lookup("verbose")); err != nil {
		return err
	}
	if err := v.BindPFlag("quiet", rootFlags.Lookup("quiet")); err != nil {
		return err
	}

	// Enable environment variable support with ENVGATE_ prefix
	v.SetEnvPrefix("ENVGATE")
	v.AutomaticEnv()

	return nil
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// ExitCodeForError returns the appropriate exit code for the given error.
// Returns ExitSuccess (0) for nil errors, ExitInvalidInput (2) for user input
// errors (invalid flags, bad arguments, unparseable manifests), and otherwise
// the exit code carried by the error chain. Failed provisioning tools
// propagate their own exit status unchanged so callers can script against it.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if isInvalidInput(err) {
		return ExitInvalidInput
	}

	// errors.ExitCode returns the embedded tool exit status when one was
	// recorded, and ExitError for everything else.
	return errors.ExitCode(err)
}

// isInvalidInput reports whether the error stems from bad user input rather
// than a provisioning failure.
func isInvalidInput(err error) bool {
	for _, sentinel := range []error{
		errors.ErrInvalidOutputFormat,
		errors.ErrConfigInvalid,
		errors.ErrManifestNotFound,
		errors.ErrManifestParse,
		errors.ErrManifestInvalid,
	} {
		if stderrors.Is(err, sentinel) {
			return true
		}
	}

	// Cobra flag parsing errors (mutually exclusive flags, unknown flags, etc.)
	return isInvalidInputMessage(err.Error())
}

// isInvalidInputMessage checks if an error message indicates invalid user input.
// This catches Cobra's built-in flag validation errors.
func isInvalidInputMessage(errMsg string) bool {
	invalidInputPatterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"required flag",
		"unknown command",
	}

	for _, pattern := range invalidInputPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
