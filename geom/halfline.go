package geom

import (
	"fmt"

	"github.com/mastercactapus/gcgeom/coord"
)

// HalfLine is a ray starting at Point and heading along Dir.
type HalfLine struct {
	Point Point
	Dir   coord.Point
}

// NewHalfLine returns the ray from from through through.
func NewHalfLine(from, through Point) (HalfLine, error) {
	if from.Equal(through) {
		return HalfLine{}, fmt.Errorf("%w: half-line through a single point %v", ErrDegenerate, from)
	}
	return HalfLine{Point: from, Dir: through.Coord().Sub(from.Coord())}, nil
}

// Rotated turns the ray around its start point in the XY plane.
func (h HalfLine) Rotated(a Angle) HalfLine {
	h.Dir = h.Dir.RotatedZ(a.Radians())
	return h
}

func (h HalfLine) Angle() Angle { return Atan2(h.Dir.Y, h.Dir.X) }

// PointAt returns the point dist along the ray.
func (h HalfLine) PointAt(dist float64) Point {
	return h.Point.MovedBy(h.Dir.Normalized().Mul(dist))
}

// ClosestTo returns the point of the ray nearest to p.
func (h HalfLine) ClosestTo(p coord.Point) coord.Point {
	o := h.Point.Coord()
	t := p.Sub(o).Dot(h.Dir) / h.Dir.Dot(h.Dir)
	if t <= 0 {
		return o
	}
	return o.Add(h.Dir.Mul(t))
}

func (h HalfLine) Contains(p Point) bool {
	return coord.Distance(h, p.Coord()) <= coord.Tolerance
}
