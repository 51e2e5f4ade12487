package protocol

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFieldErrorUnwraps(t *testing.T) {
	err := FieldError{Schema: "mov", Field: "x_to", Index: 2, Offset: 9, Err: fmt.Errorf("%w: got %q", ErrInvalidInput, "0A3")}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput through FieldError")
	}
	if !strings.Contains(err.Error(), "schema=mov field=x_to index=2 offset=9") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	bare := FieldError{Field: "a", Err: ErrUnknownField}
	if strings.Contains(bare.Error(), "schema=") {
		t.Fatalf("empty schema rendered: %s", bare.Error())
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{ErrInputTooSmall, "input_too_small"},
		{fmt.Errorf("wrap: %w", ErrBufferTooSmall), "buffer_too_small"},
		{FieldError{Err: ErrInvalidInput}, "invalid_input"},
		{errors.Join(FieldError{Err: ErrInvalidData}), "invalid_data"},
		{ErrTypeMismatch, "type_mismatch"},
		{errors.New("boom"), "unknown"},
	}
	for _, tc := range cases {
		if got := Classify(tc.err); got != tc.want {
			t.Fatalf("Classify(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
