package main

import (
	"errors"
	"fmt"
)

// ErrorCode tags an analysis failure with the pipeline stage it came from.
type ErrorCode string

const (
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeFetch      ErrorCode = "FETCH_ERROR"
	ErrCodeAnalysis   ErrorCode = "ANALYSIS_ERROR"
	ErrCodeUnknown    ErrorCode = "UNKNOWN_ERROR"
)

// AnalysisError is the only error type the analyzer lets escape. Every
// failure reaching the caller carries a stage tag; the wrapped cause, when
// any, stays reachable through errors.Unwrap.
type AnalysisError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewValidationError reports a malformed identifier, caught before any fetch.
func NewValidationError(message string) *AnalysisError {
	return &AnalysisError{Code: ErrCodeValidation, Message: message}
}

// NewFetchError wraps a failure from the fetch collaborator.
func NewFetchError(err error) *AnalysisError {
	return &AnalysisError{Code: ErrCodeFetch, Message: "failed to fetch anime list", Err: err}
}

// NewAnalysisError reports a terminal analysis precondition failure.
func NewAnalysisError(message string) *AnalysisError {
	return &AnalysisError{Code: ErrCodeAnalysis, Message: message}
}

// WrapUnknownError coerces an unexpected error into the stage-tagged shape.
// An error already tagged passes through unchanged.
func WrapUnknownError(err error) *AnalysisError {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae
	}
	return &AnalysisError{Code: ErrCodeUnknown, Message: "unexpected error during analysis", Err: err}
}

// ErrorCodeOf extracts the stage tag, or ErrCodeUnknown for untagged errors.
func ErrorCodeOf(err error) ErrorCode {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ErrCodeUnknown
}
