package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Matrix2 is a 2x2 linear transform.
type Matrix2 struct {
	m mgl64.Mat2
}

// NewMatrix2 builds a matrix from row-major entries.
func NewMatrix2(x11, x12, x21, x22 float64) Matrix2 {
	// mgl64 stores column-major
	return Matrix2{m: mgl64.Mat2{x11, x21, x12, x22}}
}

// Rotation returns the counter-clockwise rotation by angle radians.
func Rotation(angle float64) Matrix2 {
	return Matrix2{m: mgl64.Rotate2D(angle)}
}

// At returns the entry at row, col.
func (m Matrix2) At(row, col int) float64 {
	return m.m.At(row, col)
}

// Mul transforms v.
func (m Matrix2) Mul(v Vec2) Vec2 {
	r := m.m.Mul2x1(mgl64.Vec2{v.x, v.y})
	return V(r[0], r[1])
}
