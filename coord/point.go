package coord

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tolerance is the max error when comparing coordinates.
const Tolerance = 1e-9

// Point is a location or displacement in 3D space.
type Point struct{ X, Y, Z float64 }

func (p Point) Equal(b Point) bool {
	return p.X == b.X && p.Y == b.Y && p.Z == b.Z
}

// ApproxEqual reports whether each coordinate of p and b differ by
// no more than Tolerance.
func (p Point) ApproxEqual(b Point) bool {
	return math.Abs(p.X-b.X) <= Tolerance &&
		math.Abs(p.Y-b.Y) <= Tolerance &&
		math.Abs(p.Z-b.Z) <= Tolerance
}

func (p Point) Cross(op Point) Point {
	return Point{
		p.Y*op.Z - p.Z*op.Y,
		p.Z*op.X - p.X*op.Z,
		p.X*op.Y - p.Y*op.X,
	}
}
func (p Point) Dot(op Point) float64 {
	return p.X*op.X + p.Y*op.Y + p.Z*op.Z
}
func (p Point) Mul(val float64) Point {
	p.X *= val
	p.Y *= val
	p.Z *= val
	return p
}

func (p Point) Div(val float64) Point {
	p.X /= val
	p.Y /= val
	p.Z /= val
	return p
}

// Add will add the target values to p.
func (p Point) Add(target Point) Point {
	p.X += target.X
	p.Y += target.Y
	p.Z += target.Z
	return p
}

// Sub will subtract the target values from p.
func (p Point) Sub(target Point) Point {
	p.X -= target.X
	p.Y -= target.Y
	p.Z -= target.Z
	return p
}

func (p Point) Neg() Point { return Point{-p.X, -p.Y, -p.Z} }

// Length is the magnitude of p as a vector.
func (p Point) Length() float64 { return math.Sqrt(p.Dot(p)) }

// Normalized returns the unit vector in the direction of p.
// The zero vector is returned unchanged.
func (p Point) Normalized() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return p.Div(l)
}

// Distance will return the 3D distance between p and the target.
func (p Point) Distance(target Point) float64 {
	return target.Sub(p).Length()
}

// DistanceXY will return the 2D distance to p from (x,y).
func (p Point) DistanceXY(x, y float64) float64 {
	return math.Hypot(x-p.X, y-p.Y)
}

// RotatedZ rotates p counter-clockwise around the Z axis by rad radians.
func (p Point) RotatedZ(rad float64) Point {
	v := mgl64.Rotate3DZ(rad).Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
	return Point{v[0], v[1], v[2]}
}

// Split will return a set of evenly spaced points
// from p to the target.
func (p Point) Split(target Point, n int, relative bool) []Point {
	step := target.Sub(p).Div(float64(n))

	res := make([]Point, n)
	for i := range res {
		if relative {
			res[i] = step
		} else {
			res[i] = p.Add(step.Mul(float64(i + 1)))
		}
	}

	return res
}
