package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error kinds for the extraction pipeline. Callers branch on these with
// errors.Is to decide retry policy: upstream failures are often retryable,
// parse failures are not without a prompt change, input failures never are.
var (
	ErrEmptyInput   = errors.New("empty input text")
	ErrUpstream     = errors.New("completion service failure")
	ErrUnparseable  = errors.New("unparseable extraction response")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// NewInputError marks a request rejected before any completion call was made.
func NewInputError(message string) error {
	return &AppError{Code: "INPUT_ERROR", Message: message, Cause: ErrEmptyInput}
}

// NewUpstreamError wraps a transport/provider failure from the completion service.
func NewUpstreamError(message string, cause error) error {
	if cause == nil {
		return &AppError{Code: "UPSTREAM_ERROR", Message: message, Cause: ErrUpstream}
	}
	return &AppError{Code: "UPSTREAM_ERROR", Message: message, Cause: fmt.Errorf("%w: %w", ErrUpstream, cause)}
}

// NewParseError marks a reply in which no JSON object could be located or parsed.
func NewParseError(message string, cause error) error {
	if cause == nil {
		return &AppError{Code: "PARSE_ERROR", Message: message, Cause: ErrUnparseable}
	}
	return &AppError{Code: "PARSE_ERROR", Message: message, Cause: fmt.Errorf("%w: %w", ErrUnparseable, cause)}
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrInvalidInput)
}

func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstream)
}

func IsParseError(err error) bool {
	return errors.Is(err, ErrUnparseable)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
