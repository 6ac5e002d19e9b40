package factory

import (
	"github.com/automoto/bamboo/archetypes"
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBloodSpray spawns a drop of blood flying off at v.
func CreateBloodSpray(ecs *ecs.ECS, pos, v gamemath.Vec2) *donburi.Entry {
	spray := archetypes.BloodSpray.Spawn(ecs)

	components.Body.SetValue(spray, body(pos, v, cfg.Effects.BloodMass, cfg.Physics.DefaultFriction))
	dir := cfg.DirLeft
	if v.X() > 0 {
		dir = cfg.DirRight
	}
	components.Sprite.SetValue(spray, components.SpriteData{Dir: dir, Scale: 1, Opacity: 255})
	return spray
}

// CreateCorpse leaves the body of a dead character behind.
func CreateCorpse(ecs *ecs.ECS, pos, v gamemath.Vec2, dir cfg.Direction, kind string) *donburi.Entry {
	corpse := archetypes.Corpse.Spawn(ecs)

	components.Body.SetValue(corpse, body(pos, v, cfg.Effects.CorpseMass, cfg.Physics.DefaultFriction))
	components.Corpse.SetValue(corpse, components.CorpseData{Kind: kind, Dir: dir})
	components.Sprite.SetValue(corpse, components.SpriteData{Dir: dir, Scale: 1, Opacity: 255})
	components.State.SetValue(corpse, components.StateData{
		CurrentState:  cfg.Dying,
		PreviousState: cfg.StateNone,
	})
	return corpse
}

// CreateSmoke releases a wisp of smoke of random size. It spins towards
// dir, or a random way for DirNone.
func CreateSmoke(ecs *ecs.ECS, pos, v gamemath.Vec2, dir cfg.Direction) *donburi.Entry {
	scale := cfg.Effects.SmokeMinScale + rng.Float64()*cfg.Effects.SmokeScaleSpread
	return CreateSmokeScaled(ecs, pos, v, dir, scale)
}

func CreateSmokeScaled(ecs *ecs.ECS, pos, v gamemath.Vec2, dir cfg.Direction, scale float64) *donburi.Entry {
	fx := cfg.Effects
	smoke := archetypes.Smoke.Spawn(ecs)

	if dir == cfg.DirNone {
		dir = cfg.DirLeft
		if rng.Intn(2) == 0 {
			dir = cfg.DirRight
		}
	}
	lifetime := fx.SmokeMinLifetime + int(rng.Float64()*float64(fx.SmokeLifeSpread))
	ticks := float32(lifetime)

	components.Body.SetValue(smoke, components.BodyData{Pos: pos, Vel: v, Mass: 1})
	components.Sprite.SetValue(smoke, components.SpriteData{Dir: dir, Scale: scale, Opacity: 255})
	components.Smoke.SetValue(smoke, components.SmokeData{
		Lifetime: lifetime,
		Fade:     gween.New(255, 0, ticks, ease.Linear),
		Grow:     gween.New(float32(scale), float32(scale+fx.SmokeGrowth*float64(lifetime)), ticks, ease.Linear),
	})
	return smoke
}

// CreatePuffOfSmoke surrounds r with smoke billowing outwards.
func CreatePuffOfSmoke(ecs *ecs.ECS, r gamemath.Rect) {
	c := r.Center()
	for i := 0; i < cfg.Effects.PuffCount; i++ {
		p := gamemath.V(c.X()+rng.NormFloat64()*r.W/3, c.Y()+rng.NormFloat64()*r.H/3)
		CreateSmoke(ecs, p, p.Sub(c).Scale(cfg.Effects.PuffSpeed), cfg.DirNone)
	}
}

// CreateShuriken throws a shuriken from pos at velocity v. It never hits
// its owner.
func CreateShuriken(ecs *ecs.ECS, pos, v gamemath.Vec2, owner donburi.Entity) *donburi.Entry {
	s := archetypes.Shuriken.Spawn(ecs)

	components.Body.SetValue(s, body(pos, v, cfg.Projectile.Mass, cfg.Projectile.Friction))
	components.Projectile.SetValue(s, components.ProjectileData{
		Owner:  owner,
		Damage: cfg.Projectile.Damage,
	})
	components.Sprite.SetValue(s, components.SpriteData{Scale: 1, Opacity: 255})
	return s
}
