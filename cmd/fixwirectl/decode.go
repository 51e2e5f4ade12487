package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/fixwire/internal/protocol/frame"
	"github.com/danmuck/fixwire/internal/protocol/record"
	"github.com/spf13/cobra"
)

func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <schema> [raw]",
		Short: "Decode messages and print their fields",
		Long: `Decode messages and print their fields, one record per line.

With raw given, exactly that message is decoded. Otherwise records are read
from stdin, separated by the configured terminator.`,
		Example: `  fixwirectl decode mov '[     MOV013037]'`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 2 {
				rec, err := record.Parse(s, []byte(args[1]))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, formatRecord(rec))
				return err
			}

			r := frame.NewReader(cmd.InOrStdin(), s, a.frameOptions())
			for {
				rec, err := r.Next()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, formatRecord(rec)); err != nil {
					return err
				}
			}
		},
	}
}

func formatRecord(rec *record.Record) string {
	s := rec.Schema()
	parts := make([]string, 0, s.NumFields())
	for _, name := range s.Names() {
		v, _ := rec.Get(name)
		switch x := v.(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s=%q", name, x))
		case byte:
			parts = append(parts, fmt.Sprintf("%s=%q", name, string([]byte{x})))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", name, x))
		}
	}
	return strings.Join(parts, " ")
}
