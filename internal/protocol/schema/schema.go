package schema

import (
	"fmt"
	"strings"

	"github.com/danmuck/fixwire/internal/protocol"
	"github.com/danmuck/fixwire/internal/protocol/field"
	"github.com/rs/zerolog/log"
)

// Element binds a field kind to its logical name.
type Element struct {
	Name string
	Kind field.Kind
}

// Field declares one named field of a schema.
func Field(name string, kind field.Kind) Element {
	return Element{Name: name, Kind: kind}
}

// Schema is an ordered, immutable list of named fixed-width fields.
// It is safe for concurrent use.
type Schema struct {
	name    string
	elems   []Element
	offsets []int
	index   map[string]int
	length  int
}

// Define validates elems and builds the layout. Errors wrap
// protocol.ErrEmptySchema, ErrInvalidKind or ErrDuplicateField.
func Define(name string, elems ...Element) (*Schema, error) {
	if len(elems) == 0 {
		log.Error().Str("schema", name).Msg("schema.Define empty")
		return nil, fmt.Errorf("schema %q: %w", name, protocol.ErrEmptySchema)
	}

	s := &Schema{
		name:  name,
		elems: make([]Element, len(elems)),
		index: make(map[string]int, len(elems)),
	}
	copy(s.elems, elems)

	lengths := make([]int, len(elems))
	for i, e := range s.elems {
		if err := checkElement(e); err != nil {
			log.Error().Str("schema", name).Int("index", i).Str("field", e.Name).Err(err).Msg("schema.Define invalid field")
			return nil, protocol.FieldError{Schema: name, Field: e.Name, Index: i, Err: err}
		}
		if prev, dup := s.index[e.Name]; dup {
			log.Error().Str("schema", name).Str("field", e.Name).Int("first", prev).Int("again", i).Msg("schema.Define duplicate field")
			return nil, protocol.FieldError{
				Schema: name,
				Field:  e.Name,
				Index:  i,
				Err:    fmt.Errorf("%w: first declared at index %d", protocol.ErrDuplicateField, prev),
			}
		}
		s.index[e.Name] = i
		lengths[i] = e.Kind.Len()
	}
	s.offsets, s.length = Offsets(lengths)
	return s, nil
}

// MustDefine is Define for package-level declarations. It panics on error.
func MustDefine(name string, elems ...Element) *Schema {
	s, err := Define(name, elems...)
	if err != nil {
		panic(err)
	}
	return s
}

func checkElement(e Element) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: empty field name", protocol.ErrInvalidKind)
	}
	if e.Kind == nil {
		return fmt.Errorf("%w: nil kind", protocol.ErrInvalidKind)
	}
	return e.Kind.Validate()
}

func (s *Schema) Name() string { return s.name }

// Len is the total wire length of one message.
func (s *Schema) Len() int { return s.length }

func (s *Schema) NumFields() int { return len(s.elems) }

// Field returns the i-th element in declaration order.
func (s *Schema) Field(i int) Element { return s.elems[i] }

// Offset returns the byte offset of the i-th field.
func (s *Schema) Offset(i int) int { return s.offsets[i] }

// Index resolves a field name to its position.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Names returns field names in declaration order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.elems))
	for i, e := range s.elems {
		out[i] = e.Name
	}
	return out
}

// Layout is one row of a schema description.
type Layout struct {
	Index  int
	Name   string
	Kind   string
	Type   string
	Offset int
	Length int
}

// Describe returns the layout table in declaration order.
func (s *Schema) Describe() []Layout {
	out := make([]Layout, len(s.elems))
	for i, e := range s.elems {
		out[i] = Layout{
			Index:  i,
			Name:   e.Name,
			Kind:   e.Kind.String(),
			Type:   e.Kind.Type().String(),
			Offset: s.offsets[i],
			Length: e.Kind.Len(),
		}
	}
	return out
}
