package geom

import (
	"fmt"

	"github.com/mastercactapus/gcgeom/coord"
	"github.com/mastercactapus/gcgeom/gcode"
)

// Shape is anything a point can lie on.
type Shape interface {
	Contains(p Point) bool
}

// Point is a location in 3D space, optionally tagged with the gcode
// record it came from. The record is not owned by the point.
type Point struct {
	X, Y, Z float64

	Move gcode.Move
}

func NewPoint(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// PointFromMove returns the X/Y position of m at height z.
func PointFromMove(m gcode.Move, z float64) (Point, error) {
	if !gcode.IsLinearXY(m) {
		return Point{}, fmt.Errorf("%w: %v", ErrInvalidMove, m)
	}
	args := m.Args()
	return Point{X: args['X'], Y: args['Y'], Z: z, Move: m}, nil
}

// ToPoint converts v to a Point. Supported are Point, coord.Point,
// gcode.Move (at z = 0) and 2 or 3 element float slices or arrays.
func ToPoint(v interface{}) (Point, error) {
	switch v := v.(type) {
	case Point:
		return v, nil
	case *Point:
		if v != nil {
			return *v, nil
		}
	case coord.Point:
		return Point{X: v.X, Y: v.Y, Z: v.Z}, nil
	case gcode.Move:
		return PointFromMove(v, 0)
	case [2]float64:
		return Point{X: v[0], Y: v[1]}, nil
	case [3]float64:
		return Point{X: v[0], Y: v[1], Z: v[2]}, nil
	case []float64:
		switch len(v) {
		case 2:
			return Point{X: v[0], Y: v[1]}, nil
		case 3:
			return Point{X: v[0], Y: v[1], Z: v[2]}, nil
		}
	}
	return Point{}, fmt.Errorf("%w: can't make a point from (%T) %v", ErrInvalidArgument, v, v)
}

func (p Point) Coord() coord.Point { return coord.Point{X: p.X, Y: p.Y, Z: p.Z} }

func (p Point) XY() (float64, float64)           { return p.X, p.Y }
func (p Point) XYZ() (float64, float64, float64) { return p.X, p.Y, p.Z }

// Equal reports whether p and o have the same coordinates.
func (p Point) Equal(o Point) bool { return p.Coord().ApproxEqual(o.Coord()) }

// Contains reports whether o is at p.
func (p Point) Contains(o Point) bool { return p.Equal(o) }

func (p Point) Distance(o Point) float64 { return p.Coord().Distance(o.Coord()) }

func (p Point) Neg() Point { return Point{X: -p.X, Y: -p.Y, Z: -p.Z} }

// Add moves p by o taken as a vector.
func (p Point) Add(o Point) Point { return p.MovedBy(o.Coord()) }

// Sub moves p by -o taken as a vector.
func (p Point) Sub(o Point) Point { return p.MovedBy(o.Coord().Neg()) }

func (p Point) WithX(x float64) Point { p.X = x; return p }
func (p Point) WithY(y float64) Point { p.Y = y; return p }
func (p Point) WithZ(z float64) Point { p.Z = z; return p }

// As2D returns p with z set to 0.
func (p Point) As2D() Point {
	if p.Z == 0 {
		return p
	}
	return p.WithZ(0)
}

// MovedBy returns a new point displaced by v. The result has no record.
func (p Point) MovedBy(v coord.Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Moved returns a new point displaced by dx, dy, dz.
func (p Point) Moved(dx, dy, dz float64) Point {
	return p.MovedBy(coord.Point{X: dx, Y: dy, Z: dz})
}

// Intersecting returns the shapes of check that p lies on.
// Duplicates are returned once.
func (p Point) Intersecting(check ...Shape) []Shape {
	var res []Shape
	for _, s := range check {
		if s != nil && s.Contains(p) && !containsShape(res, s) {
			res = append(res, s)
		}
	}
	return res
}

// Inside reports whether p, flattened to z = 0, is inside the polygon
// bounded by segs using the even-odd rule. A test ray is cast from p to
// the origin and crossings with the flattened edges are counted. When
// the origin is within the bounds of the polygon the ray runs
// horizontally past its right edge instead. A ray through a shared
// vertex counts once per edge touching it.
func (p Point) Inside(segs []*Segment) bool {
	if len(segs) == 0 {
		return false
	}
	from := p.As2D().Coord()

	minX, minY := segs[0].start.X, segs[0].start.Y
	maxX, maxY := minX, minY
	for _, s := range segs {
		minX, maxX = min(minX, s.start.X, s.end.X), max(maxX, s.start.X, s.end.X)
		minY, maxY = min(minY, s.start.Y, s.end.Y), max(maxY, s.start.Y, s.end.Y)
	}
	var to coord.Point
	if minX <= 0 && 0 <= maxX && minY <= 0 && 0 <= maxY {
		to = coord.Point{X: max(maxX, from.X) + 1, Y: from.Y}
	}

	ray := coord.Segment{A: from, B: to}
	var n int
	for _, s := range segs {
		edge := coord.Segment{A: s.start.As2D().Coord(), B: s.end.As2D().Coord()}
		if edge.A.ApproxEqual(edge.B) {
			continue
		}
		if !ray.Intersect(edge).Empty() {
			n++
		}
	}
	return n%2 == 1
}

// Angle returns the bearing of p seen from the origin, ignoring z.
func (p Point) Angle() Angle { return Atan2(p.Y, p.X) }

// AngleFrom returns the bearing of p seen from o, ignoring z.
func (p Point) AngleFrom(o Point) Angle { return Atan2(p.Y-o.Y, p.X-o.X) }

func (p Point) String() string {
	return fmt.Sprintf("{%6.2f, %6.2f, %6.2f}", p.X, p.Y, p.Z)
}
