// Package record holds message instances of a schema and converts them to and
// from their fixed-width wire bytes.
//
// A Record is not safe for concurrent mutation. Its schema is shared and
// read-only.
package record

import (
	"errors"
	"fmt"

	"github.com/danmuck/fixwire/internal/protocol"
	"github.com/danmuck/fixwire/internal/protocol/schema"
	"github.com/rs/zerolog/log"
)

// Record owns one value per schema field, in declaration order.
type Record struct {
	schema *schema.Schema
	values []any
}

// New returns a record with every field at its zero value. Literal fields
// hold their constant.
func New(s *schema.Schema) *Record {
	r := &Record{schema: s, values: make([]any, s.NumFields())}
	r.Reset()
	return r
}

// Parse decodes buf against s. Bytes past s.Len() are ignored. The first field
// that fails aborts the parse and no record is returned.
func Parse(s *schema.Schema, buf []byte) (*Record, error) {
	values, err := parseValues(s, buf)
	if err != nil {
		return nil, err
	}
	return &Record{schema: s, values: values}, nil
}

func parseValues(s *schema.Schema, buf []byte) ([]any, error) {
	if len(buf) < s.Len() {
		log.Debug().Str("schema", s.Name()).Int("have", len(buf)).Int("want", s.Len()).Msg("record.Parse short input")
		return nil, fmt.Errorf("%w: schema %s needs %d bytes, got %d", protocol.ErrInputTooSmall, s.Name(), s.Len(), len(buf))
	}
	values := make([]any, s.NumFields())
	for i := range values {
		e := s.Field(i)
		off := s.Offset(i)
		v, err := e.Kind.Parse(buf[off : off+e.Kind.Len()])
		if err != nil {
			log.Debug().Str("schema", s.Name()).Str("field", e.Name).Int("offset", off).Err(err).Msg("record.Parse field rejected")
			return nil, protocol.FieldError{Schema: s.Name(), Field: e.Name, Index: i, Offset: off, Err: err}
		}
		values[i] = v
	}
	return values, nil
}

func (r *Record) Schema() *schema.Schema { return r.schema }

// Reset puts every field back to its zero value.
func (r *Record) Reset() {
	for i := range r.values {
		r.values[i] = r.schema.Field(i).Kind.Zero()
	}
}

// Clone returns an independent copy of r.
func (r *Record) Clone() *Record {
	values := make([]any, len(r.values))
	copy(values, r.values)
	return &Record{schema: r.schema, values: values}
}

// Write renders every field into buf[:Len()]. All fields are attempted; field
// failures are joined. buf contents are unspecified when an error is returned.
func (r *Record) Write(buf []byte) error {
	s := r.schema
	if len(buf) < s.Len() {
		return fmt.Errorf("%w: schema %s needs %d bytes, got %d", protocol.ErrBufferTooSmall, s.Name(), s.Len(), len(buf))
	}
	var errs []error
	for i, v := range r.values {
		e := s.Field(i)
		off := s.Offset(i)
		if err := e.Kind.Write(v, buf[off:off+e.Kind.Len()]); err != nil {
			log.Debug().Str("schema", s.Name()).Str("field", e.Name).Int("offset", off).Err(err).Msg("record.Write field rejected")
			errs = append(errs, protocol.FieldError{Schema: s.Name(), Field: e.Name, Index: i, Offset: off, Err: err})
		}
	}
	return errors.Join(errs...)
}

// Bytes allocates exactly Len() bytes and writes r into them.
func (r *Record) Bytes() ([]byte, error) {
	buf := make([]byte, r.schema.Len())
	if err := r.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// MarshalText implements encoding.TextMarshaler.
func (r *Record) MarshalText() ([]byte, error) {
	return r.Bytes()
}

// UnmarshalText parses b with r's schema. r is left untouched on error.
func (r *Record) UnmarshalText(b []byte) error {
	values, err := parseValues(r.schema, b)
	if err != nil {
		return err
	}
	r.values = values
	return nil
}

func (r *Record) String() string {
	b, err := r.Bytes()
	if err != nil {
		return fmt.Sprintf("%s(!%v)", r.schema.Name(), err)
	}
	return string(b)
}

// Get returns the value of the named field.
func (r *Record) Get(name string) (any, error) {
	i, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	return r.values[i], nil
}

// Set assigns the named field after converting v to the field's value type.
// Any Go integer is accepted for number fields if it fits the field's type.
func (r *Record) Set(name string, v any) error {
	i, err := r.resolve(name)
	if err != nil {
		return err
	}
	cv, err := r.schema.Field(i).Kind.Coerce(v)
	if err != nil {
		return protocol.FieldError{Schema: r.schema.Name(), Field: name, Index: i, Offset: r.schema.Offset(i), Err: err}
	}
	r.values[i] = cv
	return nil
}

func (r *Record) resolve(name string) (int, error) {
	i, ok := r.schema.Index(name)
	if !ok {
		return 0, protocol.FieldError{Schema: r.schema.Name(), Field: name, Index: -1, Err: protocol.ErrUnknownField}
	}
	return i, nil
}
