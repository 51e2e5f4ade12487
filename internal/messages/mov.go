// Package messages declares the built-in message layouts.
package messages

import (
	"github.com/danmuck/fixwire/internal/protocol/field"
	"github.com/danmuck/fixwire/internal/protocol/record"
	"github.com/danmuck/fixwire/internal/protocol/schema"
)

// Mov is a move order: "[" + type(8) + x(3) + y(3) + "]", 16 bytes.
var Mov = schema.MustDefine("mov",
	schema.Field("begin", field.Literal('[')),
	schema.Field("message_type", field.Text(8)),
	schema.Field("x_to", field.Number(3)),
	schema.Field("y_to", field.Number(3)),
	schema.Field("end", field.Literal(']')),
)

var (
	Begin       = schema.MustLookup[byte](Mov, "begin")
	MessageType = schema.MustLookup[string](Mov, "message_type")
	XTo         = schema.MustLookup[int16](Mov, "x_to")
	YTo         = schema.MustLookup[int16](Mov, "y_to")
	End         = schema.MustLookup[byte](Mov, "end")
)

// NewMov builds a mov record.
func NewMov(messageType string, x, y int16) *record.Record {
	r := record.New(Mov)
	record.SetValue(r, MessageType, messageType)
	record.SetValue(r, XTo, x)
	record.SetValue(r, YTo, y)
	return r
}

// All lists the built-in schemas.
func All() []*schema.Schema {
	return []*schema.Schema{Mov}
}
