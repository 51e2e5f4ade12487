package schema

import (
	"fmt"

	"github.com/danmuck/fixwire/internal/protocol"
	"github.com/danmuck/fixwire/internal/protocol/field"
)

// Key is a field name resolved against one schema with its value type checked.
// T is byte for literals, string for text and int8/int16/int32/int64 for
// numbers depending on digit count.
type Key[T any] struct {
	schema *Schema
	name   string
	index  int
}

func (k Key[T]) Schema() *Schema { return k.schema }
func (k Key[T]) Name() string    { return k.name }
func (k Key[T]) Index() int      { return k.index }

// Lookup resolves name in s and checks that T is the field's value type.
func Lookup[T any](s *Schema, name string) (Key[T], error) {
	i, ok := s.Index(name)
	if !ok {
		return Key[T]{}, protocol.FieldError{Schema: s.name, Field: name, Index: -1, Err: protocol.ErrUnknownField}
	}
	want := s.elems[i].Kind.Type()
	if got, ok := typeOf[T](); !ok || got != want {
		var zero T
		return Key[T]{}, protocol.FieldError{
			Schema: s.name,
			Field:  name,
			Index:  i,
			Offset: s.offsets[i],
			Err:    fmt.Errorf("%w: field holds %s, key wants %T", protocol.ErrTypeMismatch, want, zero),
		}
	}
	return Key[T]{schema: s, name: name, index: i}, nil
}

// MustLookup is Lookup for package-level key declarations. It panics on error.
func MustLookup[T any](s *Schema, name string) Key[T] {
	k, err := Lookup[T](s, name)
	if err != nil {
		panic(err)
	}
	return k
}

func typeOf[T any]() (field.Type, bool) {
	var zero T
	switch any(zero).(type) {
	case byte:
		return field.TypeChar, true
	case string:
		return field.TypeText, true
	case int8:
		return field.TypeInt8, true
	case int16:
		return field.TypeInt16, true
	case int32:
		return field.TypeInt32, true
	case int64:
		return field.TypeInt64, true
	default:
		return 0, false
	}
}
