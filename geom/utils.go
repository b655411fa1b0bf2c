package geom

import (
	"math"

	"github.com/mastercactapus/gcgeom/coord"
)

// DistanceLineLike returns the shortest distance from p to l, which may
// be an infinite coord.Line, a *Segment or a HalfLine.
func DistanceLineLike(l coord.LineLike, p Point) float64 {
	return coord.Distance(l, p.Coord())
}

// Circle lies in the XY plane at the height of Center.
type Circle struct {
	Center Point
	Radius float64
}

// TangentPoints returns where the lines through p touch c, ignoring z.
// A point outside c gives two points, a point on c gives itself and a
// point inside c gives none.
func TangentPoints(c Circle, p Point) []Point {
	if c.Radius <= 0 {
		return nil
	}
	d := math.Hypot(p.X-c.Center.X, p.Y-c.Center.Y)
	switch {
	case math.Abs(d-c.Radius) <= coord.Tolerance:
		return []Point{p.WithZ(c.Center.Z)}
	case d < c.Radius:
		return nil
	}

	base := p.AngleFrom(c.Center).Radians()
	alpha := math.Acos(c.Radius / d)
	return []Point{
		c.onCircle(base + alpha),
		c.onCircle(base - alpha),
	}
}

// TangentPointsParallel returns where the two tangents of c parallel to
// l touch it. A line with no XY direction gives none.
func TangentPointsParallel(c Circle, l coord.Line) []Point {
	if c.Radius <= 0 || (l.D.X == 0 && l.D.Y == 0) {
		return nil
	}
	n := Atan2(l.D.Y, l.D.X).AddDegrees(90).Radians()
	return []Point{
		c.onCircle(n),
		c.onCircle(n + math.Pi),
	}
}

func (c Circle) onCircle(rad float64) Point {
	return c.Center.Moved(c.Radius*math.Cos(rad), c.Radius*math.Sin(rad), 0)
}
