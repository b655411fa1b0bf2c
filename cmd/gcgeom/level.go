package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mastercactapus/gcgeom/coord"
	"github.com/mastercactapus/gcgeom/meshlevel"
	"github.com/spf13/cobra"
)

var levelOpts struct {
	probes      string
	refZ        float64
	granularity float64
}

var levelCmd = &cobra.Command{
	Use:   "level <file>",
	Short: "Follow a probed bed surface by offsetting Z along the toolpath",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(levelOpts.probes)
		if err != nil {
			return err
		}
		var probes []coord.Point
		err = json.Unmarshal(data, &probes)
		if err != nil {
			return fmt.Errorf("parse probes '%s': %w", levelOpts.probes, err)
		}

		mesh, err := meshlevel.NewMesh(meshlevel.OffsetFrom(levelOpts.refZ, probes))
		if err != nil {
			return err
		}

		segs, err := readToolpath(args[0])
		if err != nil {
			return err
		}
		res, err := meshlevel.New(meshlevel.Config{
			ZOffsetter:  mesh,
			Granularity: levelOpts.granularity,
		}).Level(segs)
		if err != nil {
			return err
		}
		return writeToolpath(cmd.OutOrStdout(), res)
	},
}

func init() {
	levelCmd.Flags().StringVar(&levelOpts.probes, "probes", "grid.json", "JSON list of probed {X,Y,Z} points.")
	levelCmd.Flags().Float64Var(&levelOpts.refZ, "ref-z", 0, "Probe height that needs no offset.")
	levelCmd.Flags().Float64Var(&levelOpts.granularity, "granularity", 5, "Longest move in mm before it is split.")
}
