package protocol

import (
	"errors"
	"fmt"
)

// Data errors. Any of these rejects the whole message.
var (
	ErrInputTooSmall  = errors.New("protocol: input too small")
	ErrBufferTooSmall = errors.New("protocol: buffer too small")
	ErrInvalidInput   = errors.New("protocol: invalid input")
	ErrInvalidData    = errors.New("protocol: invalid data")
)

// Schema conformance errors. These are raised when a schema is defined or
// when a caller names a field the schema does not have.
var (
	ErrEmptySchema    = errors.New("protocol: empty schema")
	ErrInvalidKind    = errors.New("protocol: invalid field kind")
	ErrDuplicateField = errors.New("protocol: duplicate field name")
	ErrUnknownField   = errors.New("protocol: unknown field")
	ErrTypeMismatch   = errors.New("protocol: field type mismatch")
)

// FieldError scopes an error to one field of a message layout.
type FieldError struct {
	Schema string
	Field  string
	Index  int
	Offset int
	Err    error
}

func (e FieldError) Error() string {
	if e.Schema == "" {
		return fmt.Sprintf("field=%s index=%d offset=%d: %v", e.Field, e.Index, e.Offset, e.Err)
	}
	return fmt.Sprintf("schema=%s field=%s index=%d offset=%d: %v", e.Schema, e.Field, e.Index, e.Offset, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// Classify names the taxonomy sentinel err wraps: "ok" for nil, "unknown" when
// none matches. Used as a metrics label.
func Classify(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInputTooSmall):
		return "input_too_small"
	case errors.Is(err, ErrBufferTooSmall):
		return "buffer_too_small"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrInvalidData):
		return "invalid_data"
	case errors.Is(err, ErrUnknownField):
		return "unknown_field"
	case errors.Is(err, ErrTypeMismatch):
		return "type_mismatch"
	default:
		return "unknown"
	}
}
