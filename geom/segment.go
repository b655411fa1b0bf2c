package geom

import (
	"fmt"
	"sort"

	"github.com/mastercactapus/gcgeom/coord"
	"github.com/mastercactapus/gcgeom/gcode"
)

// Segment is a directed move from a start to an end point, optionally
// tagged with the gcode records of each endpoint and every record that
// contributed to it.
//
// Segments are never modified after construction; operations return new
// segments. Copies own their provenance slice, the records in it are
// shared.
type Segment struct {
	start, end Point
	line       coord.Line

	extrude bool

	line1, line2 gcode.Move
	lines        []gcode.Move
}

type segmentConfig struct {
	start, end *Point
	z          *float64
	extrude    *bool
	lines      []gcode.Move
	linesSet   bool
}

// A SegmentOption customizes NewSegment and Segment.Copy.
type SegmentOption func(*segmentConfig)

// WithStart replaces the start point when copying a segment.
func WithStart(p Point) SegmentOption { return func(c *segmentConfig) { c.start = &p } }

// WithEnd replaces the end point when copying a segment.
func WithEnd(p Point) SegmentOption { return func(c *segmentConfig) { c.end = &p } }

// WithZ forces both endpoints to height z.
func WithZ(z float64) SegmentOption { return func(c *segmentConfig) { c.z = &z } }

// WithExtrude marks the segment as depositing material.
func WithExtrude(e bool) SegmentOption { return func(c *segmentConfig) { c.extrude = &e } }

// WithLines sets the provenance records of the segment.
func WithLines(lines ...gcode.Move) SegmentOption {
	return func(c *segmentConfig) {
		c.lines = lines
		c.linesSet = true
	}
}

// NewSegment builds a segment from a to b.
//
// If a is a *Segment the result is a copy of it and b must be nil;
// WithStart, WithEnd, WithLines and WithExtrude override the copied
// values. Otherwise a and b are anything ToPoint accepts. Endpoints given
// as gcode.Move records are remembered as the segment's start/end
// records and added to its provenance.
func NewSegment(a, b interface{}, opts ...SegmentOption) (*Segment, error) {
	var cfg segmentConfig
	for _, o := range opts {
		o(&cfg)
	}

	var extrude bool
	if src, ok := a.(*Segment); ok {
		if b != nil {
			return nil, fmt.Errorf("%w: second endpoint must be nil when copying a segment", ErrInvalidArgument)
		}
		a, b = src.start, src.end
		if !cfg.linesSet {
			cfg.lines = src.lines
		}
		extrude = src.extrude
	}
	if cfg.start != nil {
		a = *cfg.start
	}
	if cfg.end != nil {
		b = *cfg.end
	}
	if cfg.extrude != nil {
		extrude = *cfg.extrude
	}

	s := &Segment{
		extrude: extrude,
		lines:   append([]gcode.Move(nil), cfg.lines...),
	}

	var err error
	s.start, s.line1, err = endpoint(a, cfg.z)
	if err != nil {
		return nil, fmt.Errorf("start point: %w", err)
	}
	s.end, s.line2, err = endpoint(b, cfg.z)
	if err != nil {
		return nil, fmt.Errorf("end point: %w", err)
	}
	for _, m := range []gcode.Move{s.line1, s.line2} {
		if m != nil {
			s.lines = append(s.lines, m)
		}
	}

	if cfg.z != nil {
		s.start.Z, s.end.Z = *cfg.z, *cfg.z
	}

	if s.start.Equal(s.end) {
		return nil, fmt.Errorf("%w: segment from %v to %v has no length", ErrDegenerate, s.start, s.end)
	}

	s.line = coord.Line{P: s.start.Coord(), D: s.end.Coord().Sub(s.start.Coord())}
	s.normalize()
	return s, nil
}

// endpoint resolves a segment endpoint argument, returning the record
// it came from when it is a gcode move.
func endpoint(v interface{}, z *float64) (Point, gcode.Move, error) {
	if m, ok := v.(gcode.Move); ok {
		var pz float64
		if z != nil {
			pz = *z
		}
		p, err := PointFromMove(m, pz)
		if err != nil {
			return Point{}, nil, err
		}
		return p, m, nil
	}
	p, err := ToPoint(v)
	return p, nil, err
}

// normalize keeps the provenance sorted by line number.
func (s *Segment) normalize() {
	sort.SliceStable(s.lines, func(i, j int) bool {
		return s.lines[i].LineNo() < s.lines[j].LineNo()
	})
}

// List2Segments builds a segment for every (start, end) pair.
func List2Segments(pairs [][2]interface{}) ([]*Segment, error) {
	res := make([]*Segment, 0, len(pairs))
	for i, p := range pairs {
		s, err := NewSegment(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		res = append(res, s)
	}
	return res, nil
}

func (s *Segment) Start() Point      { return s.start }
func (s *Segment) End() Point        { return s.end }
func (s *Segment) Line() coord.Line  { return s.line }
func (s *Segment) Extrude() bool     { return s.extrude }
func (s *Segment) Line1() gcode.Move { return s.line1 }
func (s *Segment) Line2() gcode.Move { return s.line2 }

// Lines returns the provenance records ordered by line number.
func (s *Segment) Lines() []gcode.Move {
	return append([]gcode.Move(nil), s.lines...)
}

func (s *Segment) coord() coord.Segment {
	return coord.Segment{A: s.start.Coord(), B: s.end.Coord()}
}

func (s *Segment) Length() float64 { return s.start.Distance(s.end) }

// Equal reports whether o covers the same points as s, in either direction.
func (s *Segment) Equal(o *Segment) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.coord().Equal(o.coord()) && s.line.Equal(o.line)
}

// Contains reports whether p lies on s.
func (s *Segment) Contains(p Point) bool { return s.coord().Contains(p.Coord()) }

// ClosestTo returns the point of s nearest to p in 3D.
func (s *Segment) ClosestTo(p coord.Point) coord.Point { return s.coord().ClosestTo(p) }

// Intersection returns where s and o meet.
func (s *Segment) Intersection(o *Segment) coord.Intersection {
	return s.coord().Intersect(o.coord())
}

// Intersection2D intersects s and o after flattening both to z = 0.
func (s *Segment) Intersection2D(o *Segment) coord.Intersection {
	a := coord.Segment{A: s.start.As2D().Coord(), B: s.end.As2D().Coord()}
	b := coord.Segment{A: o.start.As2D().Coord(), B: o.end.As2D().Coord()}
	return a.Intersect(b)
}

func (s *Segment) intersectShape(sh Shape) coord.Intersection {
	switch sh := sh.(type) {
	case Point:
		if s.Contains(sh) {
			return coord.Intersection{Kind: coord.PointIntersection, Point: sh.Coord()}
		}
	case *Segment:
		return s.Intersection(sh)
	case HalfLine:
		// nothing past the farther endpoint of s can meet it
		reach := max(sh.Point.Distance(s.start), sh.Point.Distance(s.end)) + 1
		ray := coord.Segment{A: sh.Point.Coord(), B: sh.PointAt(reach).Coord()}
		return s.coord().Intersect(ray)
	}
	return coord.Intersection{}
}

func ignored(isec coord.Intersection, ignore []Point) bool {
	if isec.Kind != coord.PointIntersection {
		return false
	}
	for _, p := range ignore {
		if isec.Point.ApproxEqual(p.Coord()) {
			return true
		}
	}
	return false
}

// Intersecting returns the points and segments of check that s meets,
// skipping s itself and intersections at any of the ignore points.
// Duplicates are returned once. Points, segments and half-lines are
// tested; other shapes never match.
func (s *Segment) Intersecting(check []Shape, ignore ...Point) []Shape {
	var res []Shape
	for _, sh := range check {
		if o, ok := sh.(*Segment); ok && o == s {
			continue
		}
		isec := s.intersectShape(sh)
		if isec.Empty() || ignored(isec, ignore) || containsShape(res, sh) {
			continue
		}
		res = append(res, sh)
	}
	return res
}

func containsShape(list []Shape, sh Shape) bool {
	for _, o := range list {
		switch o := o.(type) {
		case *Segment:
			if o2, ok := sh.(*Segment); ok && o == o2 {
				return true
			}
		case Point:
			if p, ok := sh.(Point); ok && o.Equal(p) {
				return true
			}
		case HalfLine:
			if h, ok := sh.(HalfLine); ok && o.Point.Equal(h.Point) && o.Dir.ApproxEqual(h.Dir) {
				return true
			}
		}
	}
	return false
}

// Intersections maps every segment of check to its intersection with s,
// leaving out those that meet s at one of the ignore points. Segments
// that do not meet s are included with an empty intersection.
func (s *Segment) Intersections(check []*Segment, ignore ...Point) map[*Segment]coord.Intersection {
	res := make(map[*Segment]coord.Intersection, len(check))
	for _, o := range check {
		isec := s.Intersection(o)
		if ignored(isec, ignore) {
			continue
		}
		res[o] = isec
	}
	return res
}

// As2D returns s flattened to z = 0. The flattened segment has no records.
func (s *Segment) As2D() (*Segment, error) {
	if s.start.Z == 0 && s.end.Z == 0 {
		return s, nil
	}
	return NewSegment(s.start.As2D(), s.end.As2D())
}

// SetZ returns a copy of s with both endpoints at height z.
func (s *Segment) SetZ(z float64) (*Segment, error) { return s.Copy(WithZ(z)) }

// Copy returns a copy of s keeping its records and extrusion flag.
func (s *Segment) Copy(opts ...SegmentOption) (*Segment, error) {
	c, err := NewSegment(s, nil, opts...)
	if err != nil {
		return nil, err
	}
	c.line1, c.line2 = s.line1, s.line2
	return c, nil
}

// MovedBy returns a copy of s translated by v.
func (s *Segment) MovedBy(v coord.Point) (*Segment, error) {
	return s.Copy(WithStart(s.start.MovedBy(v)), WithEnd(s.end.MovedBy(v)))
}

// Moved returns a copy of s translated by dx, dy, dz.
func (s *Segment) Moved(dx, dy, dz float64) (*Segment, error) {
	return s.MovedBy(coord.Point{X: dx, Y: dy, Z: dz})
}

// Add translates s by p taken as a vector.
func (s *Segment) Add(p Point) (*Segment, error) { return s.MovedBy(p.Coord()) }

// Sub translates s by -p taken as a vector.
func (s *Segment) Sub(p Point) (*Segment, error) { return s.MovedBy(p.Coord().Neg()) }

// Rotated returns s turned in the XY plane either by the relative angle
// by or so that it points towards the absolute bearing to. At most one
// of them may be non-zero. The pivot is the start point, or the end
// point when fromEnd is set; the length is kept. The result has no records.
func (s *Segment) Rotated(by, to Angle, fromEnd bool) (*Segment, error) {
	if !by.IsZero() && !to.IsZero() {
		return nil, fmt.Errorf("%w: can't rotate both by %v and to %v", ErrDegenerate, by, to)
	}
	rot := by
	if !to.IsZero() {
		rot = to.Sub(s.Angle())
	}

	pivot, other := s.start, s.end
	if fromEnd {
		pivot, other = s.end, s.start
	}
	hl, err := NewHalfLine(pivot, other)
	if err != nil {
		return nil, err
	}
	p := hl.Rotated(rot).PointAt(s.Length())

	if fromEnd {
		return NewSegment(p, pivot)
	}
	return NewSegment(pivot, p)
}

// Parallels2D returns the two copies of s offset by distance to either
// side in the XY plane, followed by s itself if includeSelf is set.
func (s *Segment) Parallels2D(distance float64, includeSelf bool) ([]*Segment, error) {
	v := s.line.D.Normalized()
	a, err := s.MovedBy(coord.Point{X: v.Y, Y: -v.X, Z: v.Z}.Mul(distance))
	if err != nil {
		return nil, err
	}
	b, err := s.MovedBy(coord.Point{X: -v.Y, Y: v.X, Z: v.Z}.Mul(distance))
	if err != nil {
		return nil, err
	}
	res := []*Segment{a, b}
	if includeSelf {
		res = append(res, s)
	}
	return res, nil
}

// Scaled returns s with its length multiplied by k, keeping the start point.
func (s *Segment) Scaled(k float64) (*Segment, error) {
	v := s.line.D.Normalized().Mul(s.Length() * (k - 1))
	return s.Copy(WithEnd(s.end.MovedBy(v)))
}

// PointAt returns the point dist along the direction of s from its start
// (or back from its end). The point may lie beyond the segment.
func (s *Segment) PointAt(dist float64, fromEnd bool) Point {
	v := s.line.D.Normalized()
	if fromEnd {
		return s.end.MovedBy(v.Mul(-dist))
	}
	return s.start.MovedBy(v.Mul(dist))
}

// DistanceTo returns the distance from p to the closest point of s.
func (s *Segment) DistanceTo(p Point) float64 { return p.Distance(s.ClosestPoint(p)) }

// ClosestPoint returns the point of s closest to p. The projection is
// done in the XY plane; the result is always on s.
func (s *Segment) ClosestPoint(p Point) Point {
	vx, vy := s.end.X-s.start.X, s.end.Y-s.start.Y
	ux, uy := s.start.X-p.X, s.start.Y-p.Y

	vv := vx*vx + vy*vy
	if vv == 0 {
		return s.start
	}
	t := -(vx*ux + vy*uy) / vv

	switch {
	case t <= 0:
		return s.start
	case t >= 1:
		return s.end
	}
	return s.start.MovedBy(s.line.D.Mul(t))
}

// Angle returns the bearing of s from start to end.
func (s *Segment) Angle() Angle {
	return Atan2(s.end.Y-s.start.Y, s.end.X-s.start.X)
}

func (s *Segment) String() string {
	if s.line1 == nil || s.line2 == nil {
		return fmt.Sprintf("<%v←→%v (%.2f mm)>", s.start, s.end, s.Length())
	}
	return fmt.Sprintf("<[%2d] %g:%v←→%g:%v (%.2f mm)>",
		len(s.lines), s.line1.LineNo(), s.start, s.line2.LineNo(), s.end, s.Length())
}
