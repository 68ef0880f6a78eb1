package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies pipeline failures. Classification drives the retry policy:
// only NetworkTransient is retried; everything else surfaces immediately.
type Kind string

const (
	KindInvalidInput     Kind = "INVALID_INPUT"
	KindAuthRequired     Kind = "AUTH_REQUIRED"
	KindNotFound         Kind = "NOT_FOUND"
	KindNetworkTransient Kind = "NETWORK_TRANSIENT"
	KindToolFailure      Kind = "TOOL_FAILURE"
	KindMergeToolFailure Kind = "MERGE_TOOL_FAILURE"
	KindValidationFailed Kind = "VALIDATION_FAILED"
	KindNotReady         Kind = "NOT_READY"
	KindInternal         Kind = "INTERNAL"
)

// Retryable reports whether a failure of this kind may be attempted again
// within the configured budget.
func (k Kind) Retryable() bool {
	return k == KindNetworkTransient
}

// AppError carries a classified failure through the pipeline.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// E builds a classified error.
func E(kind Kind, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Cause: cause}
}

func Ef(kind Kind, cause error, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf extracts the classification from err, defaulting to Internal for
// anything that did not come out of the pipeline.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// MessageOf returns the human-readable detail for err.
func MessageOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Cause != nil {
			return fmt.Sprintf("%s: %v", ae.Message, ae.Cause)
		}
		return ae.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// gRPC error helpers for the boundary layer.

func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func UnauthenticatedError(message string) error {
	return status.Error(codes.Unauthenticated, message)
}

// GRPCError maps a classified pipeline error onto a gRPC status.
func GRPCError(err error) error {
	switch KindOf(err) {
	case KindInvalidInput:
		return InvalidArgumentError(MessageOf(err))
	case KindNotFound:
		return NotFoundError(MessageOf(err))
	case KindNotReady:
		return FailedPreconditionError(MessageOf(err))
	case KindAuthRequired:
		return UnauthenticatedError(MessageOf(err))
	default:
		return InternalError(MessageOf(err))
	}
}
