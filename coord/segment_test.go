package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	_, err := NewLine(Point{X: 1}, Point{X: 1})
	assert.Equal(t, ErrDegenerate, err)

	l, err := NewLine(Point{}, Point{X: 2, Y: 2})
	require.NoError(t, err)
	assert.True(t, l.Contains(Point{X: -3, Y: -3}))
	assert.InDelta(t, 1.41421, Distance(l, Point{X: 2}), 1e-4)

	// short moves far from the origin are still lines
	_, err = NewLine(Point{X: 1000}, Point{X: 1000.0000015})
	assert.NoError(t, err)
}

func TestSegment_ClosestTo(t *testing.T) {
	s := Segment{A: Point{}, B: Point{X: 10}}

	assert.Equal(t, Point{}, s.ClosestTo(Point{X: -5, Y: 1}))
	assert.Equal(t, Point{X: 10}, s.ClosestTo(Point{X: 15, Y: 1}))
	assert.Equal(t, Point{X: 4}, s.ClosestTo(Point{X: 4, Y: 3}))
	assert.Equal(t, 3.0, Distance(s, Point{X: 4, Y: 3}))
}

func TestSegment_Intersect(t *testing.T) {
	s := Segment{A: Point{}, B: Point{X: 10}}

	res := s.Intersect(Segment{A: Point{X: 5, Y: -5}, B: Point{X: 5, Y: 5}})
	require.Equal(t, PointIntersection, res.Kind)
	assert.True(t, res.Point.ApproxEqual(Point{X: 5}))

	// touching at an endpoint
	res = s.Intersect(Segment{A: Point{X: 10}, B: Point{X: 10, Y: 5}})
	require.Equal(t, PointIntersection, res.Kind)
	assert.True(t, res.Point.ApproxEqual(Point{X: 10}))

	// misses
	assert.True(t, s.Intersect(Segment{A: Point{X: 11, Y: -5}, B: Point{X: 11, Y: 5}}).Empty())

	// skew in 3D
	assert.True(t, s.Intersect(Segment{A: Point{X: 5, Y: -5, Z: 1}, B: Point{X: 5, Y: 5, Z: 1}}).Empty())

	// parallel, apart
	assert.True(t, s.Intersect(Segment{A: Point{Y: 1}, B: Point{X: 10, Y: 1}}).Empty())
}

func TestSegment_Overlap(t *testing.T) {
	s := Segment{A: Point{}, B: Point{X: 10}}

	res := s.Intersect(Segment{A: Point{X: 15}, B: Point{X: 5}})
	require.Equal(t, SegmentIntersection, res.Kind)
	assert.True(t, res.Segment.Equal(Segment{A: Point{X: 5}, B: Point{X: 10}}))

	res = s.Intersect(Segment{A: Point{X: 10}, B: Point{X: 20}})
	require.Equal(t, PointIntersection, res.Kind)
	assert.True(t, res.Point.ApproxEqual(Point{X: 10}))

	assert.True(t, s.Intersect(Segment{A: Point{X: 11}, B: Point{X: 20}}).Empty())
}

func TestSegment_Equal(t *testing.T) {
	a := Segment{A: Point{}, B: Point{X: 1, Y: 1}}
	assert.True(t, a.Equal(Segment{A: Point{X: 1, Y: 1}, B: Point{}}))
	assert.False(t, a.Equal(Segment{A: Point{}, B: Point{X: 1}}))
	assert.True(t, a.Line().Equal(Segment{A: Point{X: 2, Y: 2}, B: Point{X: 3, Y: 3}}.Line()))
}
