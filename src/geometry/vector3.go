package geometry

import (
	"fmt"
	"math"
)

// Vector is a point or displacement in 3D Euclidean space with float64
// components. Every method takes a value receiver and returns a fresh
// value; no operation writes to its operands, so Vectors can be shared
// freely across goroutines.
type Vector struct {
	X, Y, Z float64
}

// New builds a vector from its three components. No validation is
// performed; non-finite components flow through arithmetic under the
// usual IEEE 754 rules.
func New(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Zero returns the null vector (0,0,0).
func Zero() Vector {
	return Vector{}
}

// Coords returns the three components in x, y, z order.
func (v Vector) Coords() (x, y, z float64) {
	return v.X, v.Y, v.Z
}

// IsZero reports whether every component is exactly zero.
func (v Vector) IsZero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

// Equals reports exact component-wise equality.
func (v Vector) Equals(b Vector) bool {
	return (v.X == b.X) && (v.Y == b.Y) && (v.Z == b.Z)
}

// Negate returns (-x,-y,-z).
func (v Vector) Negate() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Add returns v + b.
func (v Vector) Add(b Vector) Vector {
	return Vector{
		X: v.X + b.X,
		Y: v.Y + b.Y,
		Z: v.Z + b.Z,
	}
}

// Subtract returns v - b.
func (v Vector) Subtract(b Vector) Vector {
	return Vector{
		X: v.X - b.X,
		Y: v.Y - b.Y,
		Z: v.Z - b.Z,
	}
}

// Scale returns v with every component multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Scale is the scalar-left form of Vector.Scale. Scalar multiplication
// commutes, so Scale(s, v) and v.Scale(s) are identical.
func Scale(s float64, v Vector) Vector {
	return v.Scale(s)
}

// Dot returns the dot product v · b.
func (v Vector) Dot(b Vector) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// Cross returns the cross product v × b.
func (v Vector) Cross(b Vector) Vector {
	return Vector{
		X: v.Y*b.Z - v.Z*b.Y, // y * b.z - z * b.y
		Y: v.Z*b.X - v.X*b.Z, // z * b.x - x * b.z
		Z: v.X*b.Y - v.Y*b.X, // x * b.y - y * b.x
	}
}

// Magnitude returns the Euclidean norm sqrt(x² + y² + z²). It is
// non-negative and zero only for the null vector, NaN components
// aside.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector) float64 {
	return a.Subtract(b).Magnitude()
}

// Normalize returns the unit vector v / |v|. The null vector has no
// direction: when the magnitude is exactly zero, Normalize returns an
// error wrapping ErrZeroMagnitude instead of a fallback value.
func (v Vector) Normalize() (Vector, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}, newZeroMagnitudeError(v)
	}
	return v.Scale(1 / m), nil
}

// Round returns v with every component rounded to the given number of
// decimal places. Ties round half away from zero, the math.Round
// convention. A negative decimal count is rejected with an error
// wrapping ErrNegativePrecision rather than read as left-of-decimal
// rounding.
func (v Vector) Round(decimals int) (Vector, error) {
	if decimals < 0 {
		return Vector{}, newNegativePrecisionError(decimals)
	}
	p := math.Pow(10, float64(decimals))
	return Vector{
		X: math.Round(v.X*p) / p,
		Y: math.Round(v.Y*p) / p,
		Z: math.Round(v.Z*p) / p,
	}, nil
}

// String renders v as [x,y,z] using default float formatting, with no
// fixed precision or padding.
func (v Vector) String() string {
	return fmt.Sprintf("[%v,%v,%v]", v.X, v.Y, v.Z)
}
