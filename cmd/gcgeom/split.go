package main

import (
	"math"

	"github.com/mastercactapus/gcgeom/geom"
	"github.com/spf13/cobra"
)

var splitMax float64

var splitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Rewrite the toolpath so no move is longer than --max",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		segs, err := readToolpath(args[0])
		if err != nil {
			return err
		}

		var res []*geom.Segment
		for _, s := range segs {
			pieces, err := splitEvenly(s, splitMax)
			if err != nil {
				return err
			}
			res = append(res, pieces...)
		}
		return writeToolpath(cmd.OutOrStdout(), res)
	},
}

func init() {
	splitCmd.Flags().Float64Var(&splitMax, "max", 1, "Longest move in mm.")
}

func splitEvenly(s *geom.Segment, maxLen float64) ([]*geom.Segment, error) {
	if maxLen <= 0 || s.Length() <= maxLen {
		return []*geom.Segment{s}, nil
	}
	n := int(math.Ceil(s.Length() / maxLen))
	step := s.Length() / float64(n)

	locs := make([]geom.Point, 0, n-1)
	for i := 1; i < n; i++ {
		locs = append(locs, s.PointAt(step*float64(i), false))
	}
	return s.Split(locs...)
}
