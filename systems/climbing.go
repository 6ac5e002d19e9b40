package systems

import (
	"fmt"
	"math"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OutOfRangeError is returned when a height is asked for above the part of
// a tree that can be climbed.
type OutOfRangeError struct {
	Y   float64
	Top float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("tree does not reach a height of %g (top %g)", e.Y, e.Top)
}

// HeightForY estimates the climb height on tree that sits at y. Heights
// below the base come out negative. This only works for small wobble
// angles.
func HeightForY(tree *components.ClimbableData, y float64) (float64, error) {
	for i := 0; i < tree.Height; i++ {
		step := tree.Step(i)
		if step.Y() <= 0 {
			return 0, &OutOfRangeError{Y: y, Top: tree.Top().Y()}
		}
		p := tree.Point(i)
		if p.Y()+step.Y() >= y {
			return float64(i) + (y-p.Y())/step.Y(), nil
		}
	}
	return 0, &OutOfRangeError{Y: y, Top: tree.Top().Y()}
}

// PositionForHeight returns the point on the trunk at climb height h and
// the lean of the segment there.
func PositionForHeight(tree *components.ClimbableData, h float64) (gamemath.Vec2, float64) {
	i := int(math.Floor(h))
	if i < 0 {
		i = 0
	}
	if i > tree.Height-1 {
		i = tree.Height - 1
	}
	return tree.Point(i).Add(tree.Step(i).Scale(h - float64(i))), tree.Angle(i)
}

// DistanceFrom estimates the distance from p to the trunk. This only works
// for small wobble angles.
func DistanceFrom(tree *components.ClimbableData, p gamemath.Vec2) float64 {
	base := tree.Point(0)
	if base.Y() > p.Y() {
		return p.Sub(base).Mag()
	}
	for i := 0; i <= tree.Height; i++ {
		if q := tree.Point(i); q.Y() > p.Y() {
			return math.Abs(q.X() - p.X())
		}
	}
	return p.Sub(tree.Top()).Mag()
}

func clampHeight(tree *components.ClimbableData, h float64) float64 {
	return math.Max(0, math.Min(tree.MaxClimbHeight(), h))
}

// Attach puts climber on tree at the height of its feet, moving it off any
// tree it was on.
func Attach(w donburi.World, tree, climber *donburi.Entry, rate float64) {
	ch := components.Character.Get(climber)
	if ch.IsClimbing() && w.Valid(ch.Climbing) {
		Detach(w, w.Entry(ch.Climbing), climber)
	}

	t := components.Climbable.Get(tree)
	h, err := HeightForY(t, components.Body.Get(climber).Pos.Y())
	if err != nil {
		h = t.MaxClimbHeight()
	}
	t.Climbers = append(t.Climbers, components.Climber{
		Entity: climber.Entity(),
		Height: clampHeight(t, h),
	})

	ch.Climbing = tree.Entity()
	ch.Looking = cfg.DirNone
	ch.ClimbRate = rate
}

// Detach takes climber off tree.
func Detach(w donburi.World, tree, climber *donburi.Entry) {
	t := components.Climbable.Get(tree)
	if i := t.ClimberIndex(climber.Entity()); i >= 0 {
		t.Climbers = append(t.Climbers[:i], t.Climbers[i+1:]...)
	}
	if climber.Valid() && climber.HasComponent(components.Character) {
		ch := components.Character.Get(climber)
		if ch.Climbing == tree.Entity() {
			ch.Climbing = donburi.Null
			ch.ClimbRate = 0
			ch.Looking = cfg.DirNone
		}
	}
}

// ClimbTo moves climber up the tree by delta world units, or down for a
// negative delta. Reaching the base on the way down lets go of the tree.
func ClimbTo(w donburi.World, tree, climber *donburi.Entry, delta float64) {
	t := components.Climbable.Get(tree)
	i := t.ClimberIndex(climber.Entity())
	if i < 0 {
		return
	}
	h := clampHeight(t, t.Climbers[i].Height+delta/cfg.Tree.PieceHeight)
	t.Climbers[i].Height = h
	if delta < 0 && h == 0 {
		Detach(w, tree, climber)
	}
}

// ClimbHeight returns how far up its tree climber is.
func ClimbHeight(w donburi.World, climber *donburi.Entry) (float64, bool) {
	ch := components.Character.Get(climber)
	if !ch.IsClimbing() || !w.Valid(ch.Climbing) {
		return 0, false
	}
	t := components.Climbable.Get(w.Entry(ch.Climbing))
	i := t.ClimberIndex(climber.Entity())
	if i < 0 {
		return 0, false
	}
	return t.Climbers[i].Height, true
}

// Sway advances a tree's wind oscillator by one tick and bends the trunk.
func Sway(tree *components.ClimbableData) {
	tree.Phase += 1 / float64(tree.Height)
	tree.Wobble = cfg.Tree.SwayPrimary*math.Sin(tree.Phase) +
		cfg.Tree.SwaySecondary*math.Sin(tree.Phase*cfg.Tree.SwaySecondaryFreq)
	tree.Rebuild()
}

// UpdateClimbables sways the trees and carries their climbers with them.
func UpdateClimbables(ecs *ecs.ECS) {
	for _, entry := range Climbables(ecs.World) {
		tree := components.Climbable.Get(entry)
		Sway(tree)
		tree.LayoutFoliage()

		for _, c := range tree.Climbers {
			if !ecs.World.Valid(c.Entity) {
				continue
			}
			climber := ecs.World.Entry(c.Entity)
			pos, angle := PositionForHeight(tree, c.Height)

			body := components.Body.Get(climber)
			body.Vel = pos.Sub(body.Pos)
			body.Pos = pos
			components.Character.Get(climber).Rotation = angle
			syncCharacterObject(ecs.World, climber)
		}
	}
}
