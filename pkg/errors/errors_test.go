package errors

import (
	"errors"
	"testing"
)

func TestAppError(t *testing.T) {
	err := NewAppError("RESOLVE_FAILED", "could not resolve content", ErrDomainNotFound)

	want := "RESOLVE_FAILED: could not resolve content: custom domain not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, ErrDomainNotFound) {
		t.Error("expected AppError to unwrap to the sentinel")
	}
}

func TestAppError_NoCause(t *testing.T) {
	err := NewAppError("BAD_HOST", "host rejected", nil)

	want := "BAD_HOST: host rejected"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Unwrap() != nil {
		t.Error("expected nil cause")
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrUpstreamRead, "loading page")
	if wrapped == nil {
		t.Fatal("expected non-nil error")
	}
	if !errors.Is(wrapped, ErrUpstreamRead) {
		t.Error("expected wrapped error to match sentinel")
	}
	if wrapped.Error() != "loading page: content store read failed" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil should stay nil")
	}
}
