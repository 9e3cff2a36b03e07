package errors

import "errors"

// ExitCodeError wraps an error together with the exit code of the external
// tool that produced it. The pipeline's exit contract propagates the first
// failing stage's exit code as the process's own exit code, so the code must
// survive wrapping across package boundaries.
type ExitCodeError struct {
	Code int
	Err  error
}

// WithExitCode wraps an error with an external tool's exit code.
// It returns nil if err is nil, allowing for safe inline usage.
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

// Error implements the error interface.
func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code carried by err, walking the error chain.
// Returns 0 for nil errors and 1 for errors without an attached code, so the
// result is always usable as a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *ExitCodeError
	if errors.As(err, &e) {
		return e.Code
	}
	return 1
}
