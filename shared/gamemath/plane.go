package gamemath

// Plane is a line that splits the plane into an inside (negative altitude)
// and an outside.
type Plane struct {
	Normal   Vec2
	Distance float64
}

// NewPlane builds a plane from any non-zero normal.
func NewPlane(normal Vec2, distance float64) (Plane, error) {
	n, err := normal.Renormalized()
	if err != nil {
		return Plane{}, err
	}
	return Plane{Normal: n, Distance: distance}, nil
}

// PlaneFromPoints builds the plane through p1 and p2. Points to the left of
// the direction p1->p2 are outside.
func PlaneFromPoints(p1, p2 Vec2) (Plane, error) {
	n, err := p2.Sub(p1).Perpendicular().Normalized()
	if err != nil {
		return Plane{}, err
	}
	return Plane{Normal: n, Distance: n.Dot(p1)}, nil
}

// Altitude is the signed distance from the plane to p.
func (pl Plane) Altitude(p Vec2) float64 {
	return pl.Normal.Dot(p) - pl.Distance
}

func (pl Plane) IsInside(p Vec2) bool {
	return pl.Altitude(p) < 0
}

// Project returns the closest point on the plane to p.
func (pl Plane) Project(p Vec2) Vec2 {
	return p.Sub(pl.Normal.Scale(pl.Altitude(p)))
}

// Mirror reflects p in the plane.
func (pl Plane) Mirror(p Vec2) Vec2 {
	return p.Sub(pl.Normal.Scale(2 * pl.Altitude(p)))
}
