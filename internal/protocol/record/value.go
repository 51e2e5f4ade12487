package record

import (
	"fmt"

	"github.com/danmuck/fixwire/internal/protocol/schema"
)

// Value reads the field k was resolved to. It panics if k belongs to another
// schema.
func Value[T any](r *Record, k schema.Key[T]) T {
	r.mustOwn(k.Schema(), k.Name())
	return r.values[k.Index()].(T)
}

// SetValue assigns the field k was resolved to. Literal fields keep their
// constant. It panics if k belongs to another schema.
func SetValue[T any](r *Record, k schema.Key[T], v T) {
	r.mustOwn(k.Schema(), k.Name())
	cv, err := r.schema.Field(k.Index()).Kind.Coerce(v)
	if err != nil {
		// Lookup already matched T to the kind's value type.
		panic(err)
	}
	r.values[k.Index()] = cv
}

func (r *Record) mustOwn(s *schema.Schema, name string) {
	if s != r.schema {
		panic(fmt.Sprintf("record: key %q is not bound to schema %s", name, r.schema.Name()))
	}
}
