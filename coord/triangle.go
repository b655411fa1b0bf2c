package coord

import (
	"math"
)

const (
	// Epsilon is the max error when checking containment.
	Epsilon = 0.001
)

// Triangle is one face of a probed surface mesh.
type Triangle struct{ A, B, C Point }

// ContainsXY returns true if the 2D projection of the triangle
// has the point x,y.
func (t Triangle) ContainsXY(x, y float64) bool {
	p := Point{X: x, Y: y}
	a, b, c := t.A.flat(), t.B.flat(), t.C.flat()

	if !inBounds(p, a, b, c) {
		return false
	}
	s1, s2, s3 := side(a, b, p), side(b, c, p), side(c, a, p)
	if (s1 >= 0 && s2 >= 0 && s3 >= 0) || (s1 <= 0 && s2 <= 0 && s3 <= 0) {
		return true
	}

	// accept points just off an edge
	for _, e := range []Segment{{a, b}, {b, c}, {c, a}} {
		if Distance(e, p) <= Epsilon {
			return true
		}
	}
	return false
}

// Z will give the Z-coordinate on the plane defined by the triangle
// where it intersects x,y.
func (t Triangle) Z(x, y float64) float64 {
	ac := t.C.Sub(t.A)
	ab := t.B.Sub(t.A)

	cp := ac.Cross(ab)
	a, b, c := cp.X, cp.Y, cp.Z

	d := cp.Dot(t.C)

	return (d - a*x - b*y) / c
}

func (p Point) flat() Point { return Point{X: p.X, Y: p.Y} }

// adapted from https://totologic.blogspot.com/2014/01/accurate-point-in-triangle-test.html

func side(a, b, p Point) float64 {
	return (b.Y-a.Y)*(p.X-a.X) + (a.X-b.X)*(p.Y-a.Y)
}

func inBounds(p, a, b, c Point) bool {
	return p.X >= math.Min(a.X, math.Min(b.X, c.X))-Epsilon &&
		p.X <= math.Max(a.X, math.Max(b.X, c.X))+Epsilon &&
		p.Y >= math.Min(a.Y, math.Min(b.Y, c.Y))-Epsilon &&
		p.Y <= math.Max(a.Y, math.Max(b.Y, c.Y))+Epsilon
}
