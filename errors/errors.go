package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pipeline the error occurred
type Phase string

const (
	PhaseValidate Phase = "validate" // identifier validation
	PhaseInvoke   Phase = "invoke"   // toolchain subprocess
	PhaseRead     Phase = "read"     // artifact loading
	PhaseEncode   Phase = "encode"   // binary inlining
	PhaseRewrite  Phase = "rewrite"  // symbol namespacing
	PhaseEmit     Phase = "emit"     // bundle output
	PhaseStats    Phase = "stats"    // benchmark aggregation
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidIdentifier Kind = "invalid_identifier"
	KindToolchainFailure  Kind = "toolchain_failure"
	KindMissingArtifact   Kind = "missing_artifact"
	KindIOFailure         Kind = "io_failure"
	KindMalformedInput    Kind = "malformed_input"
)

// Error is the structured error type used throughout the module
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Path   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// Two Errors match when their Phase and Kind agree.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the pipeline's failure taxonomy

// InvalidIdentifier reports an identifier that is not a legal
// JavaScript identifier fragment.
func InvalidIdentifier(identifier, reason string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidIdentifier,
		Detail: fmt.Sprintf("identifier %q %s", identifier, reason),
	}
}

// ToolchainFailure reports a toolchain subprocess that exited non-zero
// or could not be started.
func ToolchainFailure(command string, cause error) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindToolchainFailure,
		Detail: fmt.Sprintf("toolchain %q failed", command),
		Cause:  cause,
	}
}

// MissingArtifact reports an expected build output that is absent after
// a nominally successful toolchain run.
func MissingArtifact(path string, cause error) *Error {
	return &Error{
		Phase: PhaseRead,
		Kind:  KindMissingArtifact,
		Path:  path,
		Cause: cause,
	}
}

// IO reports a filesystem failure with the offending path.
func IO(phase Phase, path string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIOFailure,
		Path:  path,
		Cause: cause,
	}
}

// Malformed reports input that does not match the expected format.
func Malformed(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformedInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with pipeline context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
