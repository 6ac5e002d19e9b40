package systems

import (
	"math"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type eacher interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

// collect snapshots the entries carrying a tag so the caller may kill them
// while walking the slice.
func collect(w donburi.World, tag eacher) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// UpdateCorpses topples dead characters, lets them lie, then sinks them
// into the ground.
func UpdateCorpses(ecs *ecs.ECS) {
	field := groundOf(ecs.World)
	fx := cfg.Effects

	for _, e := range collect(ecs.World, tags.Corpse) {
		if !IsAlive(ecs.World, e.Entity()) {
			continue
		}
		corpse := components.Corpse.Get(e)
		body := components.Body.Get(e)
		sprite := components.Sprite.Get(e)

		if corpse.Timer < fx.CorpsePhysicsTicks {
			Integrate(body, field)
		}
		corpse.Timer++

		switch {
		case corpse.Timer < fx.CorpseRotateTicks:
			s := -1.0
			if corpse.Dir == cfg.DirLeft {
				s = 1
			}
			sprite.Rotation = math.Min(fx.CorpseMaxRotation, sprite.Rotation+2+0.5*s*float64(corpse.Timer))
		case corpse.Timer == fx.CorpseRotateTicks:
			sprite.Rotation = 0
			setState(e, cfg.Dead)
		case corpse.Timer >= fx.CorpseRemoveTick:
			Kill(ecs.World, e)
		case corpse.Timer > fx.CorpsePhysicsTicks:
			if corpse.Sink == nil {
				ticks := float32(fx.CorpseRemoveTick - fx.CorpsePhysicsTicks)
				corpse.Sink = gween.New(0, float32(fx.CorpseSinkRate)*ticks, ticks, ease.Linear)
				corpse.SinkFrom = body.Pos.Y()
			}
			depth, _ := corpse.Sink.Update(1)
			body.Pos = body.Pos.WithY(corpse.SinkFrom - float64(depth))
		}
	}
}

// UpdateSmoke drifts smoke upwards while it spins, grows and fades out.
func UpdateSmoke(ecs *ecs.ECS) {
	fx := cfg.Effects
	lift := fx.SmokeGravity.Vec()

	for _, e := range collect(ecs.World, tags.Smoke) {
		if !IsAlive(ecs.World, e.Entity()) {
			continue
		}
		smoke := components.Smoke.Get(e)
		body := components.Body.Get(e)
		sprite := components.Sprite.Get(e)

		smoke.Age++
		if smoke.Age >= smoke.Lifetime {
			Kill(ecs.World, e)
		}

		body.Vel = body.Vel.Add(lift).Scale(fx.SmokeDrag)
		body.Pos = body.Pos.Add(body.Vel)
		if sprite.Dir == cfg.DirLeft {
			sprite.Rotation += fx.SmokeSpin
		} else {
			sprite.Rotation -= fx.SmokeSpin
		}

		scale, _ := smoke.Grow.Update(1)
		sprite.Scale = float64(scale)
		opacity, _ := smoke.Fade.Update(1)
		sprite.Opacity = float64(opacity)
	}
}
