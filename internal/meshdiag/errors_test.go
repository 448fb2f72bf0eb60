package meshdiag

import (
	"errors"
	"testing"
)

func TestInputErrorUnwrap(t *testing.T) {
	err := &InputError{Cause: ErrIndexOutOfRange, Index: 7, Msg: "out of range"}
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Error("expected errors.Is to match the wrapped sentinel")
	}
	if errors.Is(err, ErrRaggedArray) {
		t.Error("did not expect errors.Is to match an unrelated sentinel")
	}
}

func TestInputErrorMessage(t *testing.T) {
	err := &InputError{Cause: ErrNonFiniteCoordinate, Index: 3, Msg: "non-finite coordinate"}
	got := err.Error()
	if got == "" {
		t.Fatal("expected a non-empty error message")
	}
}
