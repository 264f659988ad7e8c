package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/svt"
	"github.com/gogpu/svt/si"
)

func newUnitsCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the unit keys usable in job files",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return listUnits(out, si.Default())
		},
	}
}

func listUnits(out io.Writer, c *svt.UnitCollection) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL\tDIMENSION\tKIND")
	for _, name := range c.Names() {
		m, err := c.Get(name)
		if err != nil {
			return err
		}
		kind := "unit"
		if _, ok := m.(svt.MiscUnit); ok {
			kind = "misc"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, m.Label(), m.CanonicalUnit().Dimension().Key(), kind)
	}
	return w.Flush()
}
