package errors

import (
	"fmt"
)

// InvalidKindError reports a taint kind that is neither "ptr" nor "reg".
type InvalidKindError struct {
	Kind string
}

// Error implements the error interface for InvalidKindError.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid taint kind %q: must be \"ptr\" or \"reg\"", e.Kind)
}

// NewInvalidKindError creates a new InvalidKindError instance.
func NewInvalidKindError(kind string) error {
	return &InvalidKindError{Kind: kind}
}

// ArtifactError reports a failure to create or write one of the session's
// temporary artifacts. The session cannot proceed without its artifacts.
type ArtifactError struct {
	Artifact string
	Err      error
}

// Error implements the error interface, identifying which artifact failed.
func (e *ArtifactError) Error() string {
	return fmt.Sprintf("failed to prepare %q artifact: %v", e.Artifact, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// NewArtifactError creates a new ArtifactError instance.
func NewArtifactError(artifact string, err error) error {
	return &ArtifactError{Artifact: artifact, Err: err}
}

// CommandError represents an error that occurred while launching the external
// engine, storing the exit code when one is available.
type CommandError struct {
	ExitCode    int
	CommonError string
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// NewCommandError creates a new CommandError instance.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
	}
}
