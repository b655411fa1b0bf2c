package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mastercactapus/gcgeom/gcode"
	"github.com/mastercactapus/gcgeom/geom"
)

func readToolpath(name string) ([]*geom.Segment, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	segs, err := geom.ReadToolpath(f)
	if err != nil {
		return nil, fmt.Errorf("read '%s': %w", name, err)
	}
	log.Printf("read %d segments from %s", len(segs), name)
	return segs, nil
}

// writeToolpath prints a move to the end of every segment, keeping the
// E and F of its record. Extrusion in the records is relative so the
// output starts with M83.
func writeToolpath(w io.Writer, segs []*geom.Segment) error {
	lines := make([]*gcode.Line, 0, len(segs)+1)
	lines = append(lines, gcode.NewLine(gcode.Block{{W: 'M', Arg: 83}}, 0))
	for _, s := range segs {
		lines = append(lines, gcode.NewLine(segmentBlock(s), 0))
	}
	_, err := io.Copy(w, gcode.NewBuffer(&gcode.LinesReader{Lines: lines}))
	return err
}

func segmentBlock(s *geom.Segment) gcode.Block {
	var b gcode.Block
	if l, ok := s.Line2().(*gcode.Line); ok {
		b = l.Block.Clone()
	} else {
		log.Printf("no record for %v, writing a plain move", s)
		g := 0.0
		if s.Extrude() {
			g = 1
		}
		b = gcode.Block{{W: 'G', Arg: g}}
	}

	end := s.End()
	b = withArg(b, 'X', end.X)
	b = withArg(b, 'Y', end.Y)
	return withArg(b, 'Z', end.Z)
}

func withArg(b gcode.Block, w byte, val float64) gcode.Block {
	if ok, _ := b.Arg(w); ok {
		b.SetArg(w, val)
		return b
	}
	return append(b, gcode.Word{W: w, Arg: val})
}
