package gamemath

// ArcLift scales the upward correction added to a thrown projectile's aim.
const ArcLift = 0.02

// ThrowVelocity returns a launch velocity of the given speed from start
// towards target, aimed above the target by an amount that grows with the
// square of the horizontal distance.
func ThrowVelocity(start, target Vec2, speed float64) (Vec2, error) {
	v := target.Sub(start)
	if v.IsZero() {
		return Zero, &DegenerateVectorError{Op: "throw", X: v.x, Y: v.y}
	}
	lift := ArcLift * v.x
	v = v.Add(V(0, lift*lift))
	dir, err := v.Normalized()
	if err != nil {
		return Zero, err
	}
	return dir.Scale(speed), nil
}
