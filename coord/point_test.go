package coord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Add(t *testing.T) {
	a := Point{X: 1, Y: 2, Z: 3}
	b := Point{X: 4, Y: 5, Z: 6}

	assert.Equal(t, Point{X: 5, Y: 7, Z: 9}, a.Add(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
}

func TestPoint_DistanceXY(t *testing.T) {
	dist := Point{X: 1, Y: 2, Z: 3}.DistanceXY(4, 5)
	assert.InEpsilon(t, 4.24264, dist, .01)
}

func TestPoint_Normalized(t *testing.T) {
	assert.InDelta(t, 1, Point{X: 3, Y: 4}.Normalized().Length(), 1e-12)
	assert.Equal(t, Point{}, Point{}.Normalized())
}

func TestPoint_RotatedZ(t *testing.T) {
	p := Point{X: 1, Y: 0, Z: 2}.RotatedZ(math.Pi / 2)
	assert.True(t, p.ApproxEqual(Point{X: 0, Y: 1, Z: 2}), "got %v", p)
}

func TestPoint_ApproxEqual(t *testing.T) {
	a, b := 0.1, 0.2
	assert.True(t, Point{X: a + b - 0.3}.ApproxEqual(Point{}))
	assert.True(t, Point{X: 6.123233995736766e-16, Y: 10}.ApproxEqual(Point{Y: 10}))
	assert.True(t, Point{X: 1000}.ApproxEqual(Point{X: 1000 + 1e-10}))
	assert.False(t, Point{X: 1000}.ApproxEqual(Point{X: 1000.0000015}))
	assert.False(t, Point{Z: 1e-8}.ApproxEqual(Point{}))
}

func TestPoint_Split(t *testing.T) {
	var a Point //zero
	b := Point{X: 10, Y: 10, Z: 10}

	res := a.Split(b, 2, false)

	assert.Equal(t, []Point{{X: 5, Y: 5, Z: 5}, {X: 10, Y: 10, Z: 10}}, res)

	a = Point{X: 10, Y: 10, Z: 10}
	b = Point{X: 20, Y: 20, Z: 20}
	res = a.Split(b, 4, false)
	assert.Equal(t,
		[]Point{{X: 12.5, Y: 12.5, Z: 12.5}, {X: 15, Y: 15, Z: 15}, {X: 17.5, Y: 17.5, Z: 17.5}, {X: 20, Y: 20, Z: 20}},
		res,
	)

	res = a.Split(b, 2, true)
	assert.Equal(t, []Point{{X: 5, Y: 5, Z: 5}, {X: 5, Y: 5, Z: 5}}, res)
}
