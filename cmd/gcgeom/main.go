package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gcgeom",
	Short: "Toolpath geometry tools for gcode files",
	Long: `gcgeom reads G0/G1 toolpaths and reports on or rewrites their segments.
Arcs (G2/G3) are not supported.`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(log.Lshortfile)

	rootCmd.AddCommand(infoCmd, crossingsCmd, splitCmd, levelCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
