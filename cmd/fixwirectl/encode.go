package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/fixwire/internal/protocol/field"
	"github.com/danmuck/fixwire/internal/protocol/frame"
	"github.com/danmuck/fixwire/internal/protocol/record"
	"github.com/danmuck/fixwire/internal/protocol/schema"
	"github.com/spf13/cobra"
)

func newEncodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <schema> [field=value...]",
		Short: "Encode one message from field assignments",
		Long: `Encode one message from field assignments.

Fields that are not assigned keep their zero value. Text longer than its
field is truncated; numbers that do not fit their field are rejected.`,
		Example: `  fixwirectl encode mov message_type=MOV x_to=13 y_to=37`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			rec, err := buildRecord(s, args[1:])
			if err != nil {
				return err
			}
			return frame.NewWriter(cmd.OutOrStdout(), a.frameOptions()).Write(rec)
		},
	}
}

func buildRecord(s *schema.Schema, assignments []string) (*record.Record, error) {
	rec := record.New(s)
	for _, as := range assignments {
		name, raw, ok := strings.Cut(as, "=")
		if !ok {
			return nil, fmt.Errorf("assignment %q: want field=value", as)
		}
		i, ok := s.Index(name)
		if !ok {
			// Let Set report the unknown field with schema context.
			return nil, rec.Set(name, raw)
		}
		v, err := parseValue(s.Field(i).Kind, raw)
		if err != nil {
			return nil, fmt.Errorf("assignment %q: %w", as, err)
		}
		if err := rec.Set(name, v); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func parseValue(k field.Kind, raw string) (any, error) {
	switch k.Type() {
	case field.TypeText:
		return raw, nil
	case field.TypeChar:
		if len(raw) != 1 {
			return nil, fmt.Errorf("want one character, got %q", raw)
		}
		return raw[0], nil
	default:
		return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	}
}
