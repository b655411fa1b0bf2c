package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print segment, length and extrusion totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		segs, err := readToolpath(args[0])
		if err != nil {
			return err
		}

		var n int
		var travel, extruded, e float64
		for _, s := range segs {
			if !s.Extrude() {
				travel += s.Length()
				continue
			}
			n++
			extruded += s.Length()
			e += s.Line2().Args()['E']
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "segments:  %d (%d extruding)\n", len(segs), n)
		fmt.Fprintf(out, "extruded:  %.2f mm\n", extruded)
		fmt.Fprintf(out, "travel:    %.2f mm\n", travel)
		fmt.Fprintf(out, "filament:  %.4f mm\n", e)
		return nil
	},
}
