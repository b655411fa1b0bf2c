package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngle_Normalize(t *testing.T) {
	assert.True(t, Degrees(370).Equal(Degrees(10)))
	assert.True(t, Degrees(-90).Equal(Degrees(270)))
	assert.True(t, Degrees(360).IsZero())
	assert.True(t, Radians(math.Pi).Equal(Degrees(180)))
	assert.InDelta(t, 10, Degrees(370).Degrees(), 1e-9)

	a := Radians(-1e-18)
	assert.True(t, a.Radians() >= 0 && a.Radians() < 2*math.Pi)
	assert.True(t, a.IsZero())
}

func TestAngle_Arithmetic(t *testing.T) {
	a := Degrees(350).Add(Degrees(20))
	assert.True(t, a.Equal(Degrees(10)), "got %v", a)

	a = Degrees(10).Sub(Degrees(20))
	assert.True(t, a.Equal(Degrees(350)), "got %v", a)

	assert.True(t, Degrees(45).AddDegrees(45).Equal(Degrees(90)))
	assert.True(t, Degrees(45).AddRadians(math.Pi/4).Equal(Degrees(90)))
}

func TestAngle_Compare(t *testing.T) {
	assert.True(t, Degrees(10).Less(Degrees(20)))
	assert.False(t, Degrees(20).Less(Degrees(10)))
	assert.Equal(t, 0, Degrees(0).Compare(Degrees(360)))
	assert.Equal(t, 1, Degrees(359).Compare(Degrees(1)))
	assert.Equal(t, "90.00°", Degrees(90).String())
}

func TestAtan2(t *testing.T) {
	assert.True(t, Atan2(0, 1).Equal(Degrees(0)))
	assert.True(t, Atan2(1, 0).Equal(Degrees(90)))
	assert.True(t, Atan2(0, -1).Equal(Degrees(180)))
	assert.True(t, Atan2(-1, 0).Equal(Degrees(270)))
	assert.NotPanics(t, func() { Atan2(0, 0) })
	assert.Equal(t, Angle{}, Atan2(0, 0))
}
