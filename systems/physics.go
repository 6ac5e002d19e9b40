package systems

import (
	"math"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/shared/terrain"
	"github.com/automoto/bamboo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Weight is the force gravity exerts on b.
func Weight(b *components.BodyData) gamemath.Vec2 {
	return cfg.Physics.Gravity.Vec().Scale(b.Mass)
}

func ApplyForce(b *components.BodyData, f gamemath.Vec2) {
	b.Force = b.Force.Add(f)
}

func ApplyImpulse(b *components.BodyData, j gamemath.Vec2) {
	b.Vel = b.Vel.Add(j)
}

func GroundLevel(b *components.BodyData, field terrain.HeightField) float64 {
	h, _ := b.Ground.Sample(field, b.Pos.X())
	return h
}

func GroundNormal(b *components.BodyData, field terrain.HeightField) gamemath.Vec2 {
	_, n := b.Ground.Sample(field, b.Pos.X())
	return n
}

func IsOnGround(b *components.BodyData, field terrain.HeightField) bool {
	return b.Pos.Y() <= GroundLevel(b, field)+cfg.Physics.GroundEpsilon
}

// resolveGroundContact applies the ground's reaction to a body touching it:
// inward velocity and force are cancelled and friction opposes sliding.
func resolveGroundContact(b *components.BodyData, field terrain.HeightField) {
	n := GroundNormal(b, field)
	t := n.Perpendicular()

	if vn := n.Dot(b.Vel); vn < 0 {
		ApplyImpulse(b, n.Scale(-vn))
	}

	var normalForce float64
	if fn := n.Dot(b.Force); fn < 0 {
		normalForce = -fn
		ApplyForce(b, n.Scale(normalForce))
	}

	b.RunForce = 0
	if w := Weight(b).Mag(); w > 0 {
		b.RunForce = normalForce / w
	}

	friction := b.Friction * normalForce
	vt := t.Dot(b.Vel)
	ft := t.Dot(b.Force)
	switch {
	case math.Abs(vt) > gamemath.Tolerance:
		f := math.Min(friction, math.Abs(vt)*b.Mass+math.Abs(ft))
		ApplyForce(b, t.Scale(-math.Copysign(f, vt)))
	case math.Abs(ft) > gamemath.Tolerance:
		f := math.Min(math.Abs(ft), friction)
		ApplyForce(b, t.Scale(-math.Copysign(f, ft)))
	}
}

// NetForce returns the force accumulated on b this tick, including the
// ground reaction, and resets the accumulator to b's weight. It must be
// called once per tick.
func NetForce(b *components.BodyData, field terrain.HeightField) gamemath.Vec2 {
	if IsOnGround(b, field) {
		resolveGroundContact(b, field)
	}
	f := b.Force
	b.Force = Weight(b)
	return f
}

// Integrate advances b by one tick.
func Integrate(b *components.BodyData, field terrain.HeightField) {
	f := NetForce(b, field)
	b.Vel = b.Vel.Add(f.Div(b.Mass)).Scale(1 - b.LinearDamping)
	b.Pos = b.Pos.Add(b.Vel)

	if g := GroundLevel(b, field); b.Pos.Y() < g {
		n := GroundNormal(b, field)
		if depth, err := n.ComponentOf(gamemath.V(0, b.Pos.Y()-g)); err == nil {
			b.Pos = b.Pos.Sub(depth)
		} else {
			b.Pos = b.Pos.WithY(g)
		}
	}
}

// UpdatePhysics moves debris. Blood sprays vanish when they reach the ground
// and otherwise point along their flight.
func UpdatePhysics(ecs *ecs.ECS) {
	field := groundOf(ecs.World)

	var debris []*donburi.Entry
	tags.Debris.Each(ecs.World, func(e *donburi.Entry) {
		debris = append(debris, e)
	})

	for _, e := range debris {
		if !IsAlive(ecs.World, e.Entity()) {
			continue
		}
		body := components.Body.Get(e)
		if IsOnGround(body, field) {
			Kill(ecs.World, e)
			continue
		}
		Integrate(body, field)

		sprite := components.Sprite.Get(e)
		if sprite.Dir == cfg.DirRight {
			sprite.Rotation = -body.Vel.AngleDegrees()
		} else {
			sprite.Rotation = 180 - body.Vel.AngleDegrees()
		}
	}
}
