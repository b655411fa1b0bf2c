package main

import (
	"fmt"

	"github.com/mastercactapus/gcgeom/coord"
	"github.com/mastercactapus/gcgeom/geom"
	"github.com/spf13/cobra"
)

var crossingsCmd = &cobra.Command{
	Use:   "crossings <file>",
	Short: "List extruding segments that cross each other on the same layer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		segs, err := readToolpath(args[0])
		if err != nil {
			return err
		}

		var printed []*geom.Segment
		for _, s := range segs {
			if s.Extrude() {
				printed = append(printed, s)
			}
		}

		out := cmd.OutOrStdout()
		var n int
		for i, s := range printed {
			// joints between consecutive moves are not crossings
			ignore := []geom.Point{s.Start(), s.End()}
			rest := printed[i+1:]
			isecs := s.Intersections(rest, ignore...)
			for _, o := range rest {
				isec, ok := isecs[o]
				if !ok || isec.Kind != coord.PointIntersection {
					continue
				}
				n++
				fmt.Fprintf(out, "%v crosses %v at %v\n", s, o, geom.NewPoint(isec.Point.X, isec.Point.Y, isec.Point.Z))
			}
		}
		fmt.Fprintf(out, "%d crossings\n", n)
		return nil
	},
}
