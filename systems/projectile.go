package systems

import (
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles flies shurikens. A shuriken strikes the first character
// other than its thrower that it touches, and is picked up after lying
// still for a while. Every shuriken moves before any of them looks for a
// victim.
func UpdateProjectiles(ecs *ecs.ECS) {
	field := groundOf(ecs.World)
	shurikens := collect(ecs.World, tags.Shuriken)

	for _, e := range shurikens {
		if !IsAlive(ecs.World, e.Entity()) {
			continue
		}
		p := components.Projectile.Get(e)
		body := components.Body.Get(e)

		if p.RestTimer >= cfg.Projectile.RestTimeout {
			Kill(ecs.World, e)
			continue
		}
		Integrate(body, field)
		if body.Vel.IsZero() {
			p.RestTimer++
		}
		components.Sprite.Get(e).Rotation += cfg.Projectile.Spin
	}

	for _, e := range shurikens {
		if !IsAlive(ecs.World, e.Entity()) {
			continue
		}
		p := components.Projectile.Get(e)
		body := components.Body.Get(e)

		hitBox := gamemath.RectFromCenter(body.Pos, cfg.Projectile.HitSize, cfg.Projectile.HitSize)
		for _, victim := range CharactersColliding(ecs.World, hitBox) {
			if victim.Entity() == p.Owner {
				continue
			}
			Hit(ecs, victim, body.Pos, body.Vel.Scale(body.Mass), p.Damage)
			Kill(ecs.World, e)
			break
		}
	}
}
