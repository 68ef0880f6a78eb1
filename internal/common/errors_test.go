package common

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestKind_Retryable(t *testing.T) {
	if !KindNetworkTransient.Retryable() {
		t.Error("expected NETWORK_TRANSIENT to be retryable")
	}
	for _, k := range []Kind{
		KindInvalidInput, KindAuthRequired, KindNotFound, KindToolFailure,
		KindMergeToolFailure, KindValidationFailed, KindNotReady, KindInternal,
	} {
		if k.Retryable() {
			t.Errorf("expected %q to be definitive", k)
		}
	}
}

func TestKindOf(t *testing.T) {
	err := E(KindAuthRequired, "cookies expired", nil)
	if got := KindOf(err); got != KindAuthRequired {
		t.Errorf("KindOf = %q, want %q", got, KindAuthRequired)
	}

	// classification survives wrapping
	wrapped := fmt.Errorf("fetch video: %w", err)
	if got := KindOf(wrapped); got != KindAuthRequired {
		t.Errorf("KindOf(wrapped) = %q, want %q", got, KindAuthRequired)
	}

	if got := KindOf(errors.New("plain")); got != KindInternal {
		t.Errorf("KindOf(plain) = %q, want %q", got, KindInternal)
	}
}

func TestMessageOf(t *testing.T) {
	cause := errors.New("exit status 1")
	err := E(KindToolFailure, "retrieval tool failed", cause)
	if got := MessageOf(err); got != "retrieval tool failed: exit status 1" {
		t.Errorf("MessageOf = %q", got)
	}
	if got := MessageOf(nil); got != "" {
		t.Errorf("MessageOf(nil) = %q, want empty", got)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Ef(KindNetworkTransient, cause, "fetch %s track", "audio")
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to see the cause through AppError")
	}
}

func TestGRPCError_Mapping(t *testing.T) {
	cases := []struct {
		kind Kind
		code codes.Code
	}{
		{KindInvalidInput, codes.InvalidArgument},
		{KindNotFound, codes.NotFound},
		{KindNotReady, codes.FailedPrecondition},
		{KindAuthRequired, codes.Unauthenticated},
		{KindToolFailure, codes.Internal},
		{KindNetworkTransient, codes.Internal},
	}

	for _, tc := range cases {
		err := GRPCError(E(tc.kind, "boom", nil))
		if got := status.Code(err); got != tc.code {
			t.Errorf("GRPCError(%q) code = %v, want %v", tc.kind, got, tc.code)
		}
	}
}
