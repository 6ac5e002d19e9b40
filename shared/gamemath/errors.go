package gamemath

import "fmt"

// Tolerance is the magnitude below which a vector is treated as zero.
const Tolerance = 1e-9

// DegenerateVectorError is returned when an operation needs a direction
// from a vector that is too short to have one.
type DegenerateVectorError struct {
	Op   string
	X, Y float64
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("%s: degenerate vector (%g, %g)", e.Op, e.X, e.Y)
}
