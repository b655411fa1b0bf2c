package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	fullTurn = 2 * math.Pi

	// angleTolerance is how close two angles (in radians) must be to compare equal.
	angleTolerance = 1e-9
)

// Angle is a direction in the XY plane. It is always normalized to
// [0, 2π) radians so angles that differ by whole turns are equal.
//
// The zero value is 0°.
type Angle struct{ rad float64 }

// Radians returns the angle of r radians.
func Radians(r float64) Angle {
	r = math.Mod(r, fullTurn)
	if r < 0 {
		r += fullTurn
	}
	if r >= fullTurn {
		r = 0
	}
	return Angle{rad: r}
}

// Degrees returns the angle of d degrees.
func Degrees(d float64) Angle { return Radians(mgl64.DegToRad(d)) }

// Atan2 returns the angle of the vector (x, y). The zero vector has angle 0.
func Atan2(y, x float64) Angle {
	if x == 0 && y == 0 {
		return Angle{}
	}
	return Radians(math.Atan2(y, x))
}

func (a Angle) Radians() float64 { return a.rad }
func (a Angle) Degrees() float64 { return mgl64.RadToDeg(a.rad) }

func (a Angle) Add(b Angle) Angle { return Radians(a.rad + b.rad) }
func (a Angle) Sub(b Angle) Angle { return Radians(a.rad - b.rad) }

func (a Angle) AddDegrees(d float64) Angle { return a.Add(Degrees(d)) }
func (a Angle) AddRadians(r float64) Angle { return Radians(a.rad + r) }

// Equal reports whether a and b are the same direction, allowing for
// rounding on either side of 0°.
func (a Angle) Equal(b Angle) bool {
	d := math.Abs(a.rad - b.rad)
	return math.Min(d, fullTurn-d) <= angleTolerance
}

func (a Angle) IsZero() bool { return a.Equal(Angle{}) }

// Compare returns -1, 0 or 1 ordering a and b by normalized value.
func (a Angle) Compare(b Angle) int {
	switch {
	case a.Equal(b):
		return 0
	case a.rad < b.rad:
		return -1
	}
	return 1
}

func (a Angle) Less(b Angle) bool { return a.Compare(b) < 0 }

func (a Angle) String() string {
	return fmt.Sprintf("%.2f°", a.Degrees())
}
