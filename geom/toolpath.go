package geom

import (
	"fmt"
	"io"
	"math"

	"github.com/mastercactapus/gcgeom/coord"
	"github.com/mastercactapus/gcgeom/gcode"
)

// ReadToolpath parses a gcode program and returns its moves as segments.
func ReadToolpath(r io.Reader) ([]*Segment, error) {
	lines, err := gcode.ReadLines(r)
	if err != nil {
		return nil, err
	}
	return Toolpath(lines)
}

// Toolpath runs lines through a gcode.VM and returns a segment for every
// G0/G1 that changes position, in machine coordinates.
//
// Each endpoint is tagged with a resolved record of the move that
// reached it: the motion code, absolute X, Y and Z, the extrusion of
// the move as E (relative, omitted when nothing was extruded) and F
// when the source line set one. The first move starts at a fake record
// numbered 0 so it can be split like any other. Extrusion on lines that
// don't move (retracts, primes) is added to the E of the next move;
// anything left after the last move is dropped. Segments whose own move
// extrudes are flagged.
func Toolpath(lines []*gcode.Line) ([]*Segment, error) {
	vm := gcode.NewVM()

	var (
		res     []*Segment
		prev    gcode.Move
		pending float64
	)
	for _, l := range lines {
		from := vm.MPos()
		if err := vm.Run(l.Block); err != nil {
			return nil, fmt.Errorf("line %g: %w", l.N, err)
		}
		to := vm.MPos()
		de := vm.Extruded()
		if from.ApproxEqual(to) {
			pending += de
			continue
		}

		if prev == nil {
			prev = &gcode.Line{Block: position(vm.Motion(), from), Synthetic: true}
		}
		rec := resolved(l, vm.Motion(), to, pending+de)
		pending = 0

		s, err := NewSegment(
			Point{X: from.X, Y: from.Y, Z: from.Z, Move: prev},
			Point{X: to.X, Y: to.Y, Z: to.Z, Move: rec},
			WithExtrude(de > 0),
		)
		if err != nil {
			return nil, fmt.Errorf("line %g: %w", l.N, err)
		}
		s.line1, s.line2 = prev, rec
		s.lines = []gcode.Move{prev, rec}
		s.normalize()

		res = append(res, s)
		prev = rec
	}
	return res, nil
}

func position(motion float64, pos coord.Point) gcode.Block {
	return gcode.Block{
		{W: 'G', Arg: motion},
		{W: 'X', Arg: pos.X},
		{W: 'Y', Arg: pos.Y},
		{W: 'Z', Arg: pos.Z},
	}
}

func resolved(l *gcode.Line, motion float64, pos coord.Point, de float64) *gcode.Line {
	b := position(motion, pos)
	if math.Abs(de) > coord.Tolerance {
		b = append(b, gcode.Word{W: 'E', Arg: de})
	}
	if ok, f := l.Block.Arg('F'); ok {
		b = append(b, gcode.Word{W: 'F', Arg: f})
	}
	return gcode.NewLine(b, l.N)
}
