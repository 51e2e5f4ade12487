package field

import (
	"fmt"

	"github.com/danmuck/fixwire/internal/protocol"
)

// TextKind is a right-aligned, space-padded string of fixed width.
//
// Write truncates values longer than the width to their first Len() bytes and
// Parse strips leading spaces only. Values with meaningful leading spaces or
// longer than the width do not survive a round trip.
type TextKind struct {
	n int
}

// Text returns a text kind n bytes wide.
func Text(n int) TextKind {
	return TextKind{n: n}
}

func (k TextKind) Len() int   { return k.n }
func (k TextKind) Type() Type { return TypeText }
func (k TextKind) Zero() any  { return "" }

func (k TextKind) String() string {
	return fmt.Sprintf("text(%d)", k.n)
}

func (k TextKind) Validate() error {
	if k.n < 1 {
		return fmt.Errorf("%w: text width %d", protocol.ErrInvalidKind, k.n)
	}
	return nil
}

func (k TextKind) Coerce(v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return nil, mismatch(k, v)
	}
}

func (k TextKind) Write(v any, out []byte) error {
	cv, err := k.Coerce(v)
	if err != nil {
		return err
	}
	if err := checkOut(k, out); err != nil {
		return err
	}
	s := cv.(string)
	out = out[:k.n]
	if len(s) >= k.n {
		copy(out, s[:k.n])
		return nil
	}
	pad := k.n - len(s)
	for i := 0; i < pad; i++ {
		out[i] = ' '
	}
	copy(out[pad:], s)
	return nil
}

func (k TextKind) Parse(in []byte) (any, error) {
	if err := checkIn(k, in); err != nil {
		return nil, err
	}
	in = in[:k.n]
	i := 0
	for i < len(in) && in[i] == ' ' {
		i++
	}
	return string(in[i:]), nil
}
