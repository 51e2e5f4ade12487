// Package field defines the fixed-width field kinds a message layout is built
// from: literal characters, space-padded text, and zero-padded numbers.
//
// Every kind has a static byte length. Write renders a value into exactly that
// many bytes and Parse rebuilds a value from exactly that many bytes.
package field

import (
	"fmt"

	"github.com/danmuck/fixwire/internal/protocol"
)

// Type is the Go value type a kind stores.
type Type uint8

const (
	TypeChar  Type = iota + 1 // byte
	TypeText                  // string
	TypeInt8                  // int8
	TypeInt16                 // int16
	TypeInt32                 // int32
	TypeInt64                 // int64
)

func (t Type) String() string {
	switch t {
	case TypeChar:
		return "char"
	case TypeText:
		return "text"
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Kind is the contract shared by all field kinds.
type Kind interface {
	fmt.Stringer

	// Len is the fixed byte width on the wire.
	Len() int
	// Type is the Go type of values held for this kind.
	Type() Type
	// Zero is the value a freshly constructed record holds.
	Zero() any
	// Coerce converts a caller value into the kind's value type.
	Coerce(v any) (any, error)
	// Write renders v into out[:Len()].
	Write(v any, out []byte) error
	// Parse reads a value from in[:Len()].
	Parse(in []byte) (any, error)
	// Validate reports whether the kind itself is well formed.
	Validate() error
}

func checkOut(k Kind, out []byte) error {
	if len(out) < k.Len() {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", protocol.ErrBufferTooSmall, k, k.Len(), len(out))
	}
	return nil
}

func checkIn(k Kind, in []byte) error {
	if len(in) < k.Len() {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", protocol.ErrInputTooSmall, k, k.Len(), len(in))
	}
	return nil
}

func mismatch(k Kind, v any) error {
	return fmt.Errorf("%w: %s holds %s, got %T", protocol.ErrTypeMismatch, k, k.Type(), v)
}
