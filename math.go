package solarkit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const deg2rad = math.Pi / 180

// Point is a drawable position in the render frame, in the same distance unit
// as the semi-major axes of the system (AU by convention). Z is zero for 2D
// renders.
type Point struct {
	X, Y, Z float64
}

// Norm returns the distance of p from the frame center.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y, -p.Z}
}

// Angle returns the in-plane angle of p in [0, 2π).
func (p Point) Angle() float64 {
	return wrap2π(math.Atan2(p.Y, p.X))
}

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}

// wrap2π normalizes an angle to [0, 2π).
func wrap2π(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// R2 returns the rotation matrix about the 2nd axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// MxP applies a 3x3 rotation matrix to a point.
func MxP(m *mat.Dense, p Point) Point {
	var r mat.VecDense
	r.MulVec(m, mat.NewVecDense(3, []float64{p.X, p.Y, p.Z}))
	return Point{r.AtVec(0), r.AtVec(1), r.AtVec(2)}
}
