package geom

import (
	"math"
	"testing"

	"github.com/mastercactapus/gcgeom/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfLine(t *testing.T) {
	_, err := NewHalfLine(NewPoint(1, 1, 0), NewPoint(1, 1, 0))
	assert.ErrorIs(t, err, ErrDegenerate)

	h, err := NewHalfLine(NewPoint(1, 1, 0), NewPoint(2, 1, 0))
	require.NoError(t, err)
	assert.True(t, h.Angle().IsZero())
	assert.True(t, h.Contains(NewPoint(50, 1, 0)))
	assert.False(t, h.Contains(NewPoint(0, 1, 0)))
	assertPoint(t, NewPoint(4, 1, 0), h.PointAt(3))

	r := h.Rotated(Degrees(90))
	assert.True(t, r.Angle().Equal(Degrees(90)))
	assertPoint(t, NewPoint(1, 3, 0), r.PointAt(2))
	assert.InDelta(t, 1, DistanceLineLike(h, NewPoint(0, 1, 0)), 1e-12)
}

func TestTangentPoints(t *testing.T) {
	c := Circle{Center: NewPoint(0, 0, 1), Radius: 1}

	res := TangentPoints(c, NewPoint(2, 0, 0))
	require.Len(t, res, 2)
	for _, p := range res {
		assert.InDelta(t, 1, p.Distance(c.Center), 1e-9)
		assert.Equal(t, 1.0, p.Z)
		// radius and tangent are perpendicular
		radius := p.Coord().Sub(c.Center.Coord())
		tangent := NewPoint(2, 0, 1).Coord().Sub(p.Coord())
		assert.InDelta(t, 0, radius.Dot(tangent), 1e-9)
	}
	assert.InDelta(t, 0.5, res[0].X, 1e-9)
	assert.InDelta(t, math.Sqrt(3)/2, math.Abs(res[0].Y), 1e-9)

	res = TangentPoints(c, NewPoint(0, 1, 0))
	require.Len(t, res, 1)
	assertPoint(t, NewPoint(0, 1, 1), res[0])

	assert.Empty(t, TangentPoints(c, NewPoint(0.5, 0, 0)))
	assert.Empty(t, TangentPoints(Circle{}, NewPoint(3, 0, 0)))
}

func TestTangentPointsParallel(t *testing.T) {
	c := Circle{Center: NewPoint(5, 5, 0), Radius: 2}
	l := coord.Line{D: coord.Point{X: 1}}

	res := TangentPointsParallel(c, l)
	require.Len(t, res, 2)
	assertPoint(t, NewPoint(5, 7, 0), res[0])
	assertPoint(t, NewPoint(5, 3, 0), res[1])

	assert.Empty(t, TangentPointsParallel(c, coord.Line{D: coord.Point{Z: 1}}))
}
