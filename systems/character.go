package systems

import (
	"math"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The functions in this file are the command surface shared by the player
// controller and the AI. Commands are issued before physics runs for the
// tick.

func kindOf(ch *components.CharacterData) cfg.CharacterTypeConfig {
	return cfg.Characters[ch.Kind]
}

func runSpeed(ch *components.CharacterData, b *components.BodyData) float64 {
	k := kindOf(ch)
	return math.Max(k.MaxRunSpeed-b.Vel.Mag(), 0) * k.GroundAccel
}

func run(w donburi.World, entry *donburi.Entry, dir cfg.Direction) {
	ch := components.Character.Get(entry)
	body := components.Body.Get(entry)

	if ch.IsClimbing() {
		ApplyForce(body, gamemath.V(dir.Sign()*cfg.Climb.LookForce, 0))
		ch.Looking = dir
		ch.ClimbRate = 0
		return
	}

	ch.Dir = dir
	field := groundOf(w)
	if IsOnGround(body, field) {
		perp := GroundNormal(body, field).Perpendicular()
		ApplyForce(body, perp.Scale(-dir.Sign()*runSpeed(ch, body)*body.RunForce))
	} else {
		ApplyForce(body, kindOf(ch).AirAccel.Vec().Scale(dir.Sign()))
	}
	ch.Crouching = false
}

func RunRight(w donburi.World, entry *donburi.Entry) {
	run(w, entry, cfg.DirRight)
}

func RunLeft(w donburi.World, entry *donburi.Entry) {
	run(w, entry, cfg.DirLeft)
}

// Jump leaps off the tree towards where the character is looking, or off
// the ground.
func Jump(w donburi.World, entry *donburi.Entry) {
	ch := components.Character.Get(entry)
	body := components.Body.Get(entry)

	if ch.IsClimbing() {
		looking := ch.Looking
		if w.Valid(ch.Climbing) {
			Detach(w, w.Entry(ch.Climbing), entry)
		} else {
			ch.Climbing = donburi.Null
		}
		if looking != cfg.DirNone {
			ch.Dir = looking
			j := kindOf(ch).TreeJumpImpulse
			ApplyImpulse(body, gamemath.V(looking.Sign()*j.X, j.Y))
		}
		setState(entry, cfg.Jumping)
		return
	}

	if IsOnGround(body, groundOf(w)) {
		ch.Crouching = false
		ApplyImpulse(body, kindOf(ch).JumpImpulse.Vec())
		setState(entry, cfg.Jumping)
	}
}

// Crouch only works on the ground.
func Crouch(w donburi.World, entry *donburi.Entry) {
	if IsOnGround(components.Body.Get(entry), groundOf(w)) {
		components.Character.Get(entry).Crouching = true
	}
}

func Stop(w donburi.World, entry *donburi.Entry) {
	ch := components.Character.Get(entry)
	if ch.IsClimbing() {
		ch.ClimbRate = 0
		ch.Looking = cfg.DirNone
	} else {
		ch.Crouching = false
	}
}

// Climb puts the character on tree.
func Climb(w donburi.World, entry, tree *donburi.Entry, rate float64) {
	Attach(w, tree, entry, rate)
}

func ClimbUp(w donburi.World, entry *donburi.Entry) {
	ch := components.Character.Get(entry)
	if !ch.IsClimbing() || !w.Valid(ch.Climbing) {
		return
	}
	ClimbTo(w, w.Entry(ch.Climbing), entry, cfg.Climb.UpRate)
	ch.ClimbRate = cfg.Climb.UpRate
}

func ClimbDown(w donburi.World, entry *donburi.Entry) {
	ch := components.Character.Get(entry)
	if !ch.IsClimbing() || !w.Valid(ch.Climbing) {
		return
	}
	ClimbTo(w, w.Entry(ch.Climbing), entry, -cfg.Climb.DownRate)
	if ch.IsClimbing() {
		ch.ClimbRate = -cfg.Climb.DownRate
	}
}

// NearbyClimbable returns the nearest tree if it is within grabbing
// distance.
func NearbyClimbable(w donburi.World, entry *donburi.Entry) *donburi.Entry {
	tree, d := NearestClimbable(w, components.Body.Get(entry).Pos)
	if tree != nil && d < cfg.Climb.GrabDistance {
		return tree
	}
	return nil
}

// Attack starts a sword swing. The blow lands once movement for the tick
// has been resolved.
func Attack(w donburi.World, entry *donburi.Entry) {
	ch := components.Character.Get(entry)
	if !ch.CanAttack() {
		return
	}
	ch.AttackTimer = cfg.Combat.AttackRate + cfg.Combat.AttackWindup

	var offset gamemath.Vec2
	switch {
	case ch.IsClimbing():
		off := cfg.Combat.ClimbingStrikeOffset
		if ch.Dir == cfg.DirRight {
			off = -off
		}
		if ch.Dir != ch.Looking {
			off *= cfg.Combat.LookingAwayScale
		}
		offset = gamemath.V(off, cfg.Combat.ClimbingStrike)
	case ch.Crouching:
		offset = gamemath.V(0, cfg.Combat.CrouchingStrike)
	default:
		offset = gamemath.V(0, cfg.Combat.StandingStrike)
	}

	facing := ch.Looking
	if facing == cfg.DirNone {
		facing = ch.Dir
	}
	force := gamemath.V(facing.Sign()*cfg.Combat.Knockback, 0).Add(components.Body.Get(entry).Vel)

	ch.Attack = &components.PendingAttack{
		Offset: offset,
		Facing: facing,
		Force:  force,
	}
}

// ThrowProjectile throws a shuriken at target.
func ThrowProjectile(ecs *ecs.ECS, entry *donburi.Entry, target gamemath.Vec2) {
	ch := components.Character.Get(entry)
	if !ch.CanAttack() {
		return
	}
	start := components.Body.Get(entry).Pos.Add(gamemath.V(0, cfg.Projectile.LaunchHeight))
	v, err := gamemath.ThrowVelocity(start, target, cfg.Projectile.Speed)
	if err != nil {
		return
	}
	factory.CreateShuriken(ecs, start, v, entry.Entity())
}

func isRunning(w donburi.World, entry *donburi.Entry) bool {
	body := components.Body.Get(entry)
	return IsOnGround(body, groundOf(w)) && body.Vel.Mag() > cfg.Body.RunningSpeed
}

// Dims returns the size of the character's hit box for its current pose.
func Dims(w donburi.World, entry *donburi.Entry) cfg.Size {
	ch := components.Character.Get(entry)
	switch {
	case isRunning(w, entry):
		return cfg.Body.Running
	case ch.IsClimbing():
		if ch.Looking == ch.Dir {
			return cfg.Body.ClimbingNear
		}
		return cfg.Body.ClimbingAway
	case !IsOnGround(components.Body.Get(entry), groundOf(w)):
		return cfg.Body.Airborne
	}
	return cfg.Body.Standing
}

// Bounds is the character's hit box. Climbers looking away from the trunk
// lean out behind it.
func Bounds(w donburi.World, entry *donburi.Entry) gamemath.Rect {
	ch := components.Character.Get(entry)
	pos := components.Body.Get(entry).Pos
	size := Dims(w, entry)

	var off float64
	if ch.IsClimbing() && ch.Looking != ch.Dir {
		off = cfg.Body.ClimbingAwayOffset
		if ch.Dir == cfg.DirRight {
			off = -off
		}
	}
	return gamemath.Rect{L: pos.X() - size.W/2 + off, B: pos.Y(), W: size.W, H: size.H}
}

func syncCharacterObject(w donburi.World, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	syncObject(components.Object.Get(entry).Object, Bounds(w, entry))
}

// UpdateCharacters runs movement for every character. Characters on a tree
// ride it instead of falling.
func UpdateCharacters(ecs *ecs.ECS) {
	field := groundOf(ecs.World)
	for _, entry := range Characters(ecs.World) {
		ch := components.Character.Get(entry)
		body := components.Body.Get(entry)

		if body.Pos.X() < 0 {
			body.Pos = body.Pos.WithX(0)
		}

		if ch.AttackTimer > 0 {
			ch.AttackTimer--
		}

		if !ch.IsClimbing() {
			Integrate(body, field)
			ch.Rotation = 0
		} else {
			// The tree carries climbers, so their forces are spent unused.
			NetForce(body, field)
		}

		if ch.Crouching && math.Abs(body.Vel.X()) > cfg.Body.CrouchSmokeSpeed && IsOnGround(body, field) {
			if rng.Intn(cfg.Body.CrouchSmokeChance) == 0 {
				x := body.Pos.X()
				factory.CreateSmoke(ecs, gamemath.V(x, field.HeightAt(x)), gamemath.Zero, ch.Dir.Opposite())
			}
		}

		syncCharacterObject(ecs.World, entry)
	}
}
