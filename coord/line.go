package coord

import "errors"

// ErrDegenerate is returned when two points that must differ are the same.
var ErrDegenerate = errors.New("degenerate geometry")

// LineLike is an infinite line or a bounded segment.
type LineLike interface {
	// ClosestTo returns the point on the object nearest to p.
	ClosestTo(p Point) Point
}

// Line is an infinite line through P along the direction D.
type Line struct {
	P Point
	D Point
}

// NewLine returns the line passing through a and b.
func NewLine(a, b Point) (Line, error) {
	if a.ApproxEqual(b) {
		return Line{}, ErrDegenerate
	}
	return Line{P: a, D: b.Sub(a)}, nil
}

// ClosestTo projects p onto the line.
func (l Line) ClosestTo(p Point) Point {
	t := p.Sub(l.P).Dot(l.D) / l.D.Dot(l.D)
	return l.P.Add(l.D.Mul(t))
}

// Contains reports whether p lies on the line.
func (l Line) Contains(p Point) bool {
	return l.ClosestTo(p).Distance(p) <= Tolerance
}

// Parallel reports whether l and o point the same or opposite ways.
func (l Line) Parallel(o Line) bool {
	return l.D.Cross(o.D).Length() <= Tolerance*l.D.Length()*o.D.Length()
}

// Equal reports whether l and o describe the same set of points.
func (l Line) Equal(o Line) bool {
	return l.Parallel(o) && l.Contains(o.P)
}

// Distance returns the minimum distance from p to the line-like object l.
func Distance(l LineLike, p Point) float64 {
	return l.ClosestTo(p).Distance(p)
}
