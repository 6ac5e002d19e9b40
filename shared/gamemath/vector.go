// Package gamemath holds the 2D geometry used by the simulation: vectors,
// rotation matrices, rectangles, planes and polygons. Everything here is a
// pure function of its inputs.
package gamemath

import (
	"fmt"
	"math"
)

// Vec2 is an immutable 2D vector. The magnitude is computed once when the
// value is built, so callers can ask for it repeatedly.
type Vec2 struct {
	x, y float64
	mag  float64
}

// V builds a vector.
func V(x, y float64) Vec2 {
	return Vec2{x: x, y: y, mag: math.Sqrt(x*x + y*y)}
}

// Zero is the zero vector.
var Zero = Vec2{}

func (v Vec2) X() float64 { return v.x }
func (v Vec2) Y() float64 { return v.y }

// XY unpacks the components.
func (v Vec2) XY() (float64, float64) { return v.x, v.y }

func (v Vec2) Add(o Vec2) Vec2 { return V(v.x+o.x, v.y+o.y) }
func (v Vec2) Sub(o Vec2) Vec2 { return V(v.x-o.x, v.y-o.y) }
func (v Vec2) Neg() Vec2       { return Vec2{x: -v.x, y: -v.y, mag: v.mag} }

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{x: v.x * s, y: v.y * s, mag: v.mag * math.Abs(s)}
}

func (v Vec2) Div(s float64) Vec2 { return v.Scale(1 / s) }

func (v Vec2) Dot(o Vec2) float64 { return v.x*o.x + v.y*o.y }

func (v Vec2) Mag() float64  { return v.mag }
func (v Vec2) Mag2() float64 { return v.x*v.x + v.y*v.y }

// WithX returns a copy with the x component replaced.
func (v Vec2) WithX(x float64) Vec2 { return V(x, v.y) }

// WithY returns a copy with the y component replaced.
func (v Vec2) WithY(y float64) Vec2 { return V(v.x, y) }

// IsZero reports whether both components are within Tolerance of zero.
func (v Vec2) IsZero() bool {
	return math.Abs(v.x) <= Tolerance && math.Abs(v.y) <= Tolerance
}

// Normalized returns the unit vector in the direction of v.
func (v Vec2) Normalized() (Vec2, error) {
	if v.mag < Tolerance {
		return Zero, &DegenerateVectorError{Op: "normalize", X: v.x, Y: v.y}
	}
	return Vec2{x: v.x / v.mag, y: v.y / v.mag, mag: 1}, nil
}

// Renormalized is Normalized but skips the division when v is already unit
// length.
func (v Vec2) Renormalized() (Vec2, error) {
	if math.Abs(v.Mag2()-1) < Tolerance {
		return v, nil
	}
	return v.Normalized()
}

// ComponentOf returns the projection of o onto v.
func (v Vec2) ComponentOf(o Vec2) (Vec2, error) {
	m2 := v.Mag2()
	if v.mag < Tolerance || m2 == 0 {
		return Zero, &DegenerateVectorError{Op: "component of", X: v.x, Y: v.y}
	}
	return v.Scale(v.Dot(o) / m2), nil
}

// Rotate rotates v counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{x: cos*v.x - sin*v.y, y: sin*v.x + cos*v.y, mag: v.mag}
}

func (v Vec2) RotateDegrees(angle float64) Vec2 {
	return v.Rotate(angle * math.Pi / 180)
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.y, v.x) }

func (v Vec2) AngleDegrees() float64 { return v.Angle() / math.Pi * 180 }

// Perpendicular rotates v by 90 degrees without trigonometry.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{x: -v.y, y: v.x, mag: v.mag}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%f, %f)", v.x, v.y)
}
