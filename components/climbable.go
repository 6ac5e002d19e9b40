package components

import (
	"math"

	"github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Climber is a character attached to a tree at a climb height, measured in
// segments from the base.
type Climber struct {
	Entity donburi.Entity
	Height float64
}

// Foliage sides
const (
	LeafLeft  = -1
	Crown     = 0
	LeafRight = 1
)

// Foliage is a decorative leaf that rides the trunk.
type Foliage struct {
	Segment  int
	Side     int
	Pos      gamemath.Vec2
	Rotation float64
}

// ClimbableData is a bamboo tree: a chain of Height segments bent by the
// wind. The climber list is the authoritative record of who is on it.
type ClimbableData struct {
	Serial int
	Height int

	Base      gamemath.Vec2
	BaseAngle float64
	Wobble    float64
	Phase     float64

	Climbers []Climber
	Foliage  []Foliage

	// Spine, recomputed by Rebuild. Index i is the bottom of segment i.
	points []gamemath.Vec2
	steps  []gamemath.Vec2
	radii  []gamemath.Vec2
	angles []float64
}

// Rebuild recomputes the spine from the base, base angle and wobble.
func (c *ClimbableData) Rebuild() {
	n := c.Height + 1
	if cap(c.points) < n {
		c.points = make([]gamemath.Vec2, n)
		c.steps = make([]gamemath.Vec2, n)
		c.radii = make([]gamemath.Vec2, n)
		c.angles = make([]float64, n)
	}
	c.points, c.steps = c.points[:n], c.steps[:n]
	c.radii, c.angles = c.radii[:n], c.angles[:n]

	da := c.Wobble / float64(c.Height)
	rotation := gamemath.Rotation(da)
	stepRotation := -da * 180 / math.Pi

	pos := c.Base
	step := gamemath.V(0, config.Tree.PieceHeight).Rotate(c.BaseAngle)
	radius := gamemath.V(config.Tree.Radius, 0).Rotate(c.BaseAngle)
	angle := 0.0
	for i := 0; i < n; i++ {
		c.points[i] = pos
		c.steps[i] = step
		c.radii[i] = radius
		c.angles[i] = angle

		pos = pos.Add(step)
		step = rotation.Mul(step)
		angle += stepRotation
		radius = rotation.Mul(radius).Scale(config.Tree.Thinning)
	}
}

// LayoutFoliage moves the leaves to their places on the trunk.
func (c *ClimbableData) LayoutFoliage() {
	for i := range c.Foliage {
		f := &c.Foliage[i]
		f.Pos = c.points[f.Segment].Add(c.radii[f.Segment].Scale(float64(f.Side)))
		f.Rotation = c.angles[f.Segment]
	}
}

// Point returns the bottom of segment i; Point(Height) is the top.
func (c *ClimbableData) Point(i int) gamemath.Vec2 { return c.points[i] }

// Step returns the vector spanning segment i.
func (c *ClimbableData) Step(i int) gamemath.Vec2 { return c.steps[i] }

// Radius returns the half-width vector of the trunk at the bottom of segment i.
func (c *ClimbableData) Radius(i int) gamemath.Vec2 { return c.radii[i] }

// Angle returns the lean of segment i in degrees, clockwise positive.
func (c *ClimbableData) Angle(i int) float64 { return c.angles[i] }

// Top is the tip of the trunk.
func (c *ClimbableData) Top() gamemath.Vec2 { return c.points[c.Height] }

// MaxClimbHeight is as high as a climber may go.
func (c *ClimbableData) MaxClimbHeight() float64 {
	return float64(c.Height) - config.Tree.TopMargin
}

// Occupied reports whether anyone other than e is on the tree.
func (c *ClimbableData) Occupied(e donburi.Entity) bool {
	for _, cl := range c.Climbers {
		if cl.Entity != e {
			return true
		}
	}
	return false
}

// ClimberIndex returns the position of e in the climber list, or -1.
func (c *ClimbableData) ClimberIndex(e donburi.Entity) int {
	for i, cl := range c.Climbers {
		if cl.Entity == e {
			return i
		}
	}
	return -1
}

var Climbable = donburi.NewComponentType[ClimbableData]()
