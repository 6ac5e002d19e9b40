package terrain

import "github.com/automoto/bamboo/shared/gamemath"

// Probe caches the ground under one entity. The cached sample is reused
// until the entity's x position changes.
type Probe struct {
	x      float64
	height float64
	normal gamemath.Vec2
	valid  bool
}

// Sample returns the ground height and normal at x, querying field only
// when x differs from the previous sample.
func (p *Probe) Sample(field HeightField, x float64) (float64, gamemath.Vec2) {
	if !p.valid || p.x != x {
		p.x = x
		p.height = field.HeightAt(x)
		p.normal = field.NormalAt(x)
		p.valid = true
	}
	return p.height, p.normal
}

// Invalidate forces the next Sample to query the field.
func (p *Probe) Invalidate() {
	p.valid = false
}
