package config

import (
	"fmt"
	"strings"

	"github.com/danmuck/fixwire/internal/protocol"
	"github.com/danmuck/fixwire/internal/protocol/catalog"
	"github.com/danmuck/fixwire/internal/protocol/field"
	"github.com/danmuck/fixwire/internal/protocol/schema"
)

// BuildCatalog defines every message of file.
func BuildCatalog(file CatalogFile) (*catalog.Catalog, error) {
	c, err := catalog.New()
	if err != nil {
		return nil, err
	}
	for _, msg := range file.Messages {
		s, err := msg.Schema()
		if err != nil {
			return nil, err
		}
		if err := c.Register(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Schema defines the layout msg declares.
func (msg MessageDef) Schema() (*schema.Schema, error) {
	elems := make([]schema.Element, 0, len(msg.Fields))
	for _, f := range msg.Fields {
		k, err := f.FieldKind()
		if err != nil {
			return nil, fmt.Errorf("message %s field %s: %w", msg.Name, f.Name, err)
		}
		elems = append(elems, schema.Field(f.Name, k))
	}
	return schema.Define(msg.Name, elems...)
}

// FieldKind maps a definition to its field kind.
func (f FieldDef) FieldKind() (field.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(f.Kind)) {
	case "literal", "char":
		if len(f.Char) != 1 {
			return nil, fmt.Errorf("%w: literal needs exactly one char, got %q", protocol.ErrInvalidKind, f.Char)
		}
		return field.Literal(f.Char[0]), nil
	case "text":
		return field.Text(f.Length), nil
	case "number":
		return field.Number(f.Length), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", protocol.ErrInvalidKind, f.Kind)
	}
}

// Definition describes s as a definition file entry.
func Definition(s *schema.Schema) MessageDef {
	msg := MessageDef{Name: s.Name(), Fields: make([]FieldDef, 0, s.NumFields())}
	for i := 0; i < s.NumFields(); i++ {
		e := s.Field(i)
		def := FieldDef{Name: e.Name}
		switch k := e.Kind.(type) {
		case field.LiteralKind:
			def.Kind = "literal"
			def.Char = string([]byte{k.Char()})
		case field.TextKind:
			def.Kind = "text"
			def.Length = k.Len()
		case field.NumberKind:
			def.Kind = "number"
			def.Length = k.Len()
		default:
			def.Kind = e.Kind.String()
		}
		msg.Fields = append(msg.Fields, def)
	}
	return msg
}
