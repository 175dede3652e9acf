// Package errors provides structured error types for the bundle pipeline.
//
// Errors are categorized by Phase (where in the pipeline the error occurred)
// and Kind (failure category). The Error type carries the offending file path
// and a cause chain.
//
// Use the convenience constructors for the pipeline's failure taxonomy:
//
//	err := errors.ToolchainFailure("wasm-pack", cause)
//	err := errors.MissingArtifact("pkg/vaporetto_wasm.js", cause)
//	err := errors.InvalidIdentifier("my-id", "contains '-'")
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Phase and Kind agree,
// which is how callers test for a failure class without string matching.
package errors
