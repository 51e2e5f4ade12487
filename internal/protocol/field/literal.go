package field

import (
	"fmt"

	"github.com/danmuck/fixwire/internal/protocol"
)

// LiteralKind is a one byte constant. It frames messages and validates itself
// on decode.
type LiteralKind struct {
	c byte
}

// Literal returns a literal kind for c.
func Literal(c byte) LiteralKind {
	return LiteralKind{c: c}
}

// Char is the constant this kind writes and expects.
func (k LiteralKind) Char() byte { return k.c }

func (k LiteralKind) Len() int   { return 1 }
func (k LiteralKind) Type() Type { return TypeChar }
func (k LiteralKind) Zero() any  { return k.c }

func (k LiteralKind) String() string {
	return fmt.Sprintf("literal(%q)", k.c)
}

func (k LiteralKind) Validate() error {
	if k.c > 0x7f {
		return fmt.Errorf("%w: literal %#x is not ascii", protocol.ErrInvalidKind, k.c)
	}
	return nil
}

// Coerce type-checks v. The stored value is always the constant.
func (k LiteralKind) Coerce(v any) (any, error) {
	switch v.(type) {
	case byte, rune:
		return k.c, nil
	default:
		return nil, mismatch(k, v)
	}
}

// Write emits the constant regardless of v.
func (k LiteralKind) Write(v any, out []byte) error {
	if _, err := k.Coerce(v); err != nil {
		return err
	}
	if err := checkOut(k, out); err != nil {
		return err
	}
	out[0] = k.c
	return nil
}

func (k LiteralKind) Parse(in []byte) (any, error) {
	if err := checkIn(k, in); err != nil {
		return nil, err
	}
	if in[0] != k.c {
		return nil, fmt.Errorf("%w: want %q, got %q", protocol.ErrInvalidInput, k.c, in[0])
	}
	return k.c, nil
}
