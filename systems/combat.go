package systems

import (
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AttackRegion is the strip swept by a blow struck from pos.
func AttackRegion(pos gamemath.Vec2, a *components.PendingAttack) gamemath.Rect {
	c := pos.Add(a.Offset)
	return gamemath.RectFromCorners(
		c.Sub(gamemath.V(0, cfg.Combat.ReachBelow)),
		c.Add(gamemath.V(a.Facing.Sign()*cfg.Combat.Reach, cfg.Combat.ReachAbove)),
	)
}

// UpdateCombat lands the blows started this tick. Damage and knockback are
// shared evenly between everyone caught by a blow.
func UpdateCombat(ecs *ecs.ECS) {
	for _, entry := range Characters(ecs.World) {
		ch := components.Character.Get(entry)
		if ch.Attack == nil {
			continue
		}
		attack := ch.Attack
		ch.Attack = nil

		region := AttackRegion(components.Body.Get(entry).Pos, attack)
		var victims []*donburi.Entry
		for _, v := range CharactersColliding(ecs.World, region) {
			if v.Entity() != entry.Entity() {
				victims = append(victims, v)
			}
		}
		if len(victims) == 0 {
			continue
		}

		n := float64(len(victims))
		damage := cfg.Combat.Damage / n
		force := attack.Force.Div(n)
		for _, v := range victims {
			point := region.Center()
			if overlap, ok := region.Intersection(Bounds(ecs.World, v)); ok {
				point = overlap.Center()
			}
			Hit(ecs, v, point, force, damage)
		}
	}
}

// Hit wounds victim at point. A character whose health runs out leaves a
// corpse behind and is killed.
func Hit(ecs *ecs.ECS, victim *donburi.Entry, point, force gamemath.Vec2, damage float64) {
	if !IsAlive(ecs.World, victim.Entity()) {
		return
	}
	ch := components.Character.Get(victim)
	body := components.Body.Get(victim)

	jitter := cfg.Combat.BloodJitter
	for i := 0; i < cfg.Combat.BloodSprays; i++ {
		off := gamemath.V((rng.Float64()-0.5)*jitter.X, (rng.Float64()-0.5)*jitter.Y)
		factory.CreateBloodSpray(ecs, point, force.Add(off))
	}

	if !ch.IsClimbing() {
		ApplyImpulse(body, force.Div(body.Mass))
	}

	health := components.Health.Get(victim)
	health.Current -= damage
	if health.Current > 0 {
		return
	}

	factory.CreateCorpse(ecs, body.Pos, body.Vel, ch.Dir, ch.Kind)

	event := components.CharacterDiedEvent{
		Entity: victim.Entity(),
		Kind:   ch.Kind,
		Pos:    body.Pos,
		Player: ch.Player,
	}
	if victim.HasComponent(components.Player) {
		event.Slot = components.Player.Get(victim).Slot
	}
	Kill(ecs.World, victim)
	components.CharacterDied.Publish(ecs.World, event)
}
