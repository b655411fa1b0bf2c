package coord

import "math"

// Segment is the bounded part of a line between A and B.
type Segment struct{ A, B Point }

// IntersectionKind tells which field of an Intersection is valid.
type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	PointIntersection
	SegmentIntersection
)

// Intersection is the result of intersecting two segments: nothing,
// a single point, or the overlapping part of two collinear segments.
type Intersection struct {
	Kind    IntersectionKind
	Point   Point
	Segment Segment
}

func (i Intersection) Empty() bool { return i.Kind == NoIntersection }

// Dir is the vector from A to B.
func (s Segment) Dir() Point { return s.B.Sub(s.A) }

func (s Segment) Length() float64 { return s.A.Distance(s.B) }

// Line returns the infinite line supporting s.
func (s Segment) Line() Line { return Line{P: s.A, D: s.Dir()} }

// ClosestTo returns the point of s nearest to p.
func (s Segment) ClosestTo(p Point) Point {
	d := s.Dir()
	dd := d.Dot(d)
	if dd == 0 {
		return s.A
	}
	t := p.Sub(s.A).Dot(d) / dd
	switch {
	case t <= 0:
		return s.A
	case t >= 1:
		return s.B
	}
	return s.A.Add(d.Mul(t))
}

// Contains reports whether p lies on s.
func (s Segment) Contains(p Point) bool {
	return s.ClosestTo(p).Distance(p) <= Tolerance
}

// Equal reports whether s and o have the same endpoints in either order.
func (s Segment) Equal(o Segment) bool {
	return (s.A.ApproxEqual(o.A) && s.B.ApproxEqual(o.B)) ||
		(s.A.ApproxEqual(o.B) && s.B.ApproxEqual(o.A))
}

// Intersect returns where s and o meet.
func (s Segment) Intersect(o Segment) Intersection {
	d1, d2 := s.Dir(), o.Dir()
	r := o.A.Sub(s.A)
	c := d1.Cross(d2)
	cc := c.Dot(c)

	if math.Sqrt(cc) <= Tolerance*d1.Length()*d2.Length() {
		return s.overlap(o)
	}

	// skew lines never meet
	if math.Abs(r.Dot(c)) > Tolerance*math.Sqrt(cc) {
		return Intersection{}
	}

	t := r.Cross(d2).Dot(c) / cc
	u := r.Cross(d1).Dot(c) / cc
	lt := Tolerance / d1.Length()
	lu := Tolerance / d2.Length()
	if t < -lt || t > 1+lt || u < -lu || u > 1+lu {
		return Intersection{}
	}

	return Intersection{Kind: PointIntersection, Point: s.A.Add(d1.Mul(t))}
}

// overlap handles parallel segments.
func (s Segment) overlap(o Segment) Intersection {
	l := s.Line()
	if !l.Contains(o.A) {
		return Intersection{}
	}

	d := s.Dir()
	dd := d.Dot(d)
	t0 := o.A.Sub(s.A).Dot(d) / dd
	t1 := o.B.Sub(s.A).Dot(d) / dd
	lo := math.Max(0, math.Min(t0, t1))
	hi := math.Min(1, math.Max(t0, t1))

	tol := Tolerance / math.Sqrt(dd)
	switch {
	case hi < lo-tol:
		return Intersection{}
	case hi-lo <= tol:
		return Intersection{Kind: PointIntersection, Point: s.A.Add(d.Mul(lo))}
	}
	return Intersection{
		Kind:    SegmentIntersection,
		Segment: Segment{A: s.A.Add(d.Mul(lo)), B: s.A.Add(d.Mul(hi))},
	}
}
