package field

import (
	"fmt"
	"math"
	"strconv"

	"github.com/danmuck/fixwire/internal/protocol"
)

// MaxDigits is the widest number kind; an int64 holds any 18 digit value.
const MaxDigits = 18

// width maps a digit count to the smallest signed integer whose every value of
// that many digits fits. maxDigits is the largest count served by the row.
type width struct {
	maxDigits int
	typ       Type
	bits      int
	min, max  int64
}

var widths = []width{
	{maxDigits: 2, typ: TypeInt8, bits: 8, min: math.MinInt8, max: math.MaxInt8},
	{maxDigits: 4, typ: TypeInt16, bits: 16, min: math.MinInt16, max: math.MaxInt16},
	{maxDigits: 9, typ: TypeInt32, bits: 32, min: math.MinInt32, max: math.MaxInt32},
	{maxDigits: MaxDigits, typ: TypeInt64, bits: 64, min: math.MinInt64, max: math.MaxInt64},
}

func widthFor(digits int) (width, bool) {
	if digits < 1 {
		return width{}, false
	}
	for _, w := range widths {
		if digits <= w.maxDigits {
			return w, true
		}
	}
	return width{}, false
}

// TypeForDigits reports the value type of a number kind with the given digit
// count, or false when no kind of that width exists.
func TypeForDigits(digits int) (Type, bool) {
	w, ok := widthFor(digits)
	return w.typ, ok
}

// NumberKind is a decimal integer left-padded with '0' to a fixed width.
// Negative values carry a leading '-' and pad the magnitude in the
// remaining bytes.
type NumberKind struct {
	n int
}

// Number returns a number kind n digits wide.
func Number(n int) NumberKind {
	return NumberKind{n: n}
}

func (k NumberKind) Len() int { return k.n }

func (k NumberKind) Type() Type {
	w, _ := widthFor(k.n)
	return w.typ
}

func (k NumberKind) Zero() any {
	v, _ := k.typed(0)
	return v
}

func (k NumberKind) String() string {
	return fmt.Sprintf("number(%d)", k.n)
}

func (k NumberKind) Validate() error {
	if _, ok := widthFor(k.n); !ok {
		return fmt.Errorf("%w: number width %d outside [1,%d]", protocol.ErrInvalidKind, k.n, MaxDigits)
	}
	return nil
}

// Coerce accepts any Go integer and converts it to the kind's value type.
// Values outside that type's range are ErrInvalidData.
func (k NumberKind) Coerce(v any) (any, error) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows %s", protocol.ErrInvalidData, x, k)
		}
		n = int64(x)
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows %s", protocol.ErrInvalidData, x, k)
		}
		n = int64(x)
	default:
		return nil, mismatch(k, v)
	}
	return k.typed(n)
}

func (k NumberKind) typed(n int64) (any, error) {
	w, ok := widthFor(k.n)
	if !ok {
		return nil, fmt.Errorf("%w: number width %d", protocol.ErrInvalidKind, k.n)
	}
	if n < w.min || n > w.max {
		return nil, fmt.Errorf("%w: %d overflows %s (%s)", protocol.ErrInvalidData, n, k, w.typ)
	}
	switch w.typ {
	case TypeInt8:
		return int8(n), nil
	case TypeInt16:
		return int16(n), nil
	case TypeInt32:
		return int32(n), nil
	default:
		return n, nil
	}
}

// Write fails with ErrInvalidData when v needs more than Len() bytes. It never
// truncates digits.
func (k NumberKind) Write(v any, out []byte) error {
	cv, err := k.Coerce(v)
	if err != nil {
		return err
	}
	if err := checkOut(k, out); err != nil {
		return err
	}
	n := toInt64(cv)

	var tmp [20]byte
	digits := strconv.AppendInt(tmp[:0], n, 10)
	room := k.n
	if n < 0 {
		digits = digits[1:]
		room--
	}
	if len(digits) > room {
		return fmt.Errorf("%w: %d needs %d digits, %s holds %d", protocol.ErrInvalidData, n, len(digits), k, room)
	}

	out = out[:k.n]
	i := 0
	if n < 0 {
		out[0] = '-'
		i = 1
	}
	for pad := k.n - len(digits); i < pad; i++ {
		out[i] = '0'
	}
	copy(out[i:], digits)
	return nil
}

// Parse accepts exactly Len() bytes: an optional leading '-' followed by ASCII
// digits only.
func (k NumberKind) Parse(in []byte) (any, error) {
	if err := checkIn(k, in); err != nil {
		return nil, err
	}
	w, ok := widthFor(k.n)
	if !ok {
		return nil, fmt.Errorf("%w: number width %d", protocol.ErrInvalidKind, k.n)
	}
	in = in[:k.n]
	digits := in
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: %s got %q", protocol.ErrInvalidInput, k, in)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %s got %q", protocol.ErrInvalidInput, k, in)
		}
	}
	n, err := strconv.ParseInt(string(in), 10, w.bits)
	if err != nil {
		return nil, fmt.Errorf("%w: %s got %q: %v", protocol.ErrInvalidInput, k, in, err)
	}
	return k.typed(n)
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	}
	return 0
}
