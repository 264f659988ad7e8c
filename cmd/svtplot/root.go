package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/svt"
)

// NewCommand returns the svtplot root command writing to out and errOut.
func NewCommand(out, errOut io.Writer) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "svtplot",
		Short:         "Render curves of physical quantities to PNG",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if verbose {
				svt.SetLogger(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug})))
			} else {
				svt.SetLogger(nil)
			}
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log unit conversions and rendering details to stderr")

	cmd.AddCommand(
		newRenderCommand(out),
		newUnitsCommand(out),
	)
	return cmd
}
