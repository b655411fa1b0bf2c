package geom

import (
	"fmt"
	"sort"

	"github.com/mastercactapus/gcgeom/gcode"
)

// SplitAt cuts s in two at loc, which must lie on s strictly between
// its endpoints.
//
// When both endpoints of s come from gcode records the pieces get fresh
// fake records: the extrusion (E) of the end record is shared out in
// proportion to each piece's length, the feed rate (F) is carried over,
// and each piece's provenance has the parent's start/end records
// replaced by its own. The records of s are left untouched.
func (s *Segment) SplitAt(loc Point) ([]*Segment, error) {
	if !s.Contains(loc) {
		return nil, fmt.Errorf("%w: split location %v isn't on %v", ErrDegenerate, loc, s)
	}

	seg1, err := s.Copy(WithEnd(loc))
	if err != nil {
		return nil, err
	}
	seg2, err := s.Copy(WithStart(loc))
	if err != nil {
		return nil, err
	}

	if s.line1 == nil || s.line2 == nil {
		return []*Segment{seg1, seg2}, nil
	}

	frac := seg1.Length() / s.Length()
	endArgs := s.line2.Args()
	e, hasE := endArgs['E']

	args := map[byte]float64{'X': loc.X, 'Y': loc.Y}
	if hasE {
		args['E'] = e * frac
	}
	if f, ok := endArgs['F']; ok {
		args['F'] = f
	}
	mid := s.line2.Synthesize(args, s.line1.LineNo()+frac)

	seg1.line1 = s.line1.Synthesize(s.line1.Args(), s.line1.LineNo())
	seg1.line2 = mid

	if hasE {
		endArgs['E'] = e * (1 - frac)
	}
	seg2.line1 = mid.Synthesize(mid.Args(), mid.LineNo())
	seg2.line2 = s.line2.Synthesize(endArgs, s.line2.LineNo())

	seg1.lines = s.replaceLines(seg1.line1, seg1.line2)
	seg2.lines = s.replaceLines(seg2.line1, seg2.line2)
	seg1.normalize()
	seg2.normalize()

	return []*Segment{seg1, seg2}, nil
}

// replaceLines returns the provenance of s with its start and end
// records swapped for first and last.
func (s *Segment) replaceLines(first, last gcode.Move) []gcode.Move {
	lines := s.Lines()
	swap := func(old, repl gcode.Move) {
		for i, l := range lines {
			if l.LineNo() == old.LineNo() {
				lines[i] = repl
				return
			}
		}
		lines = append(lines, repl)
	}
	swap(s.line1, first)
	swap(s.line2, last)
	return lines
}

// Split cuts s at every point of locs, working outward from the start
// point, and returns the pieces in order.
func (s *Segment) Split(locs ...Point) ([]*Segment, error) {
	sorted := append([]Point(nil), locs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return s.start.Distance(sorted[i]) < s.start.Distance(sorted[j])
	})

	var res []*Segment
	tail := s
	for _, loc := range sorted {
		parts, err := tail.SplitAt(loc)
		if err != nil {
			return nil, err
		}
		res = append(res, parts[0])
		tail = parts[1]
	}
	return append(res, tail), nil
}
