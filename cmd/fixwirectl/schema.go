package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known message schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCHEMA\tFIELDS\tLENGTH")
			for _, name := range a.catalog.Names() {
				s, err := a.catalog.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%d\n", s.Name(), s.NumFields(), s.Len())
			}
			return w.Flush()
		},
	}
}

func newSchemaCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema <name>",
		Short: "Show the byte layout of a message schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tFIELD\tKIND\tTYPE\tOFFSET\tLENGTH")
			for _, row := range s.Describe() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\n", row.Index, row.Name, row.Kind, row.Type, row.Offset, row.Length)
			}
			fmt.Fprintf(w, "\t\t\t\ttotal\t%d\n", s.Len())
			return w.Flush()
		},
	}
}
